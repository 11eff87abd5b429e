package resource

import (
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var properties map[string]any
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]+))?}`)

// init loads application properties from YAML.
func init() {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	Init(value)
}

// Init reads the properties file at filepath, flattens it to dotted keys and
// resolves ${ENV:default} placeholders.
func Init(filepath string) {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	parsePropertiesMap("", viper.AllSettings(), properties)

	if err := viper.MergeConfigMap(properties); err != nil {
		log.Fatalf("Error to load application properties: %v", err)
	}
}

// parsePropertiesMap flattens the YAML tree recursively.
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolved := resolveEnvVariable(v); resolved != nil {
				result[fullKey] = resolved
			}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable resolves a ${NAME:default} placeholder against the
// environment; non-placeholder values pass through unchanged.
func resolveEnvVariable(value string) interface{} {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	envName := matches[1]
	defaultValue := ""
	if len(matches) > 2 {
		defaultValue = matches[2]
	}

	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue
	}
	if defaultValue != "" {
		return defaultValue
	}
	return nil
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
