package msg

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

// init loads the operator-facing message catalog from YAML.
func init() {
	value, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	Init(value)
}

func Init(filepath string) {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}

	if messages == nil {
		messages = make(map[string]string)
	}
	parseMessageMap("", v.AllSettings(), messages)
}

// parseMessageMap flattens the YAML tree recursively.
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the catalog entry for key with {0}, {1}... placeholders
// substituted by the given arguments.
func GetMessage(key string, args ...interface{}) string {
	msg, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		msg = strings.ReplaceAll(msg, placeholder, fmt.Sprintf("%v", arg))
	}

	return msg
}
