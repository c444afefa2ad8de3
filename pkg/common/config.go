package common

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	values map[string]any
}

// LoadConfig reads settings (the prediction endpoint, the API key, timeouts etc.) from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig is like LoadConfig but accepts the YAML document directly.
func ParseConfig(data []byte) (*Config, error) {
	values := make(map[string]any)
	err := yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, err
	}
	return NewConfig(values), nil
}

// NewConfig wraps already parsed values. A nil map is treated as an empty config.
func NewConfig(values map[string]any) *Config {
	if values == nil {
		values = make(map[string]any)
	}
	return &Config{values: values}
}

// GetString returns a string-typed parameter. If nothing is found, or if the value isn't a string,
// returns an empty value.
func (c *Config) GetString(key string) string {
	str, _ := c.values[key].(string)
	return str
}

// GetStringOrDefault returns a string-typed parameter, or `defaultValue` if it's missing or empty.
func (c *Config) GetStringOrDefault(key, defaultValue string) string {
	value := c.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetIntOrDefault returns an integer-typed parameter. If nothing is found, or if the value cannot be parsed as an integer,
// returns `defaultValue`.
func (c *Config) GetIntOrDefault(key string, defaultValue int) int {
	intValue, ok := c.values[key].(int)
	if !ok {
		return defaultValue
	}
	return intValue
}

// GetFloatOrDefault returns a float-typed parameter. Integers written without a fraction ("1" instead of "1.0")
// are accepted as well.
func (c *Config) GetFloatOrDefault(key string, defaultValue float64) float64 {
	switch value := c.values[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	default:
		return defaultValue
	}
}

// GetDurationOrDefault returns a duration-typed parameter: an integer which specifies milliseconds.
// Negative or missing values yield `defaultValue`.
func (c *Config) GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	intValue := c.GetIntOrDefault(key, -1)
	if intValue < 0 {
		return defaultValue
	}
	return time.Duration(intValue) * time.Millisecond
}
