package numberutils

import "strconv"

// ToIntWithDefault parses value as an int, returning defaultValue when the
// string is empty or malformed.
func ToIntWithDefault(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// ToFloat64WithDefault parses value as a float64, returning defaultValue
// when the string is empty or malformed.
func ToFloat64WithDefault(value string, defaultValue float64) float64 {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// ToBoolWithDefault parses value as a bool, returning defaultValue when the
// string is empty or malformed.
func ToBoolWithDefault(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
