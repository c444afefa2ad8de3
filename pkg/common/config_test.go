package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
predictionURL: https://example.com/classify/iterations/Iteration1/image
predictionKey: secret
predictionTimeout: 1500
threshold: 0.5
wholeFloat: 2
`

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/classify/iterations/Iteration1/image", config.GetString("predictionURL"))
	assert.Equal(t, "secret", config.GetStringOrDefault("predictionKey", "x"))
	assert.Equal(t, "fallback", config.GetStringOrDefault("missing", "fallback"))
	assert.Equal(t, "", config.GetString("predictionTimeout"))
	assert.Equal(t, 1500, config.GetIntOrDefault("predictionTimeout", 0))
	assert.Equal(t, 7, config.GetIntOrDefault("predictionKey", 7))
	assert.Equal(t, 0.5, config.GetFloatOrDefault("threshold", 0))
	assert.Equal(t, 2.0, config.GetFloatOrDefault("wholeFloat", 0))
	assert.Equal(t, 1500*time.Millisecond, config.GetDurationOrDefault("predictionTimeout", time.Second))
	assert.Equal(t, time.Second, config.GetDurationOrDefault("missing", time.Second))
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("predictionURL: [unterminated"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", config.GetString("predictionKey"))

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewConfig_Nil(t *testing.T) {
	config := NewConfig(nil)
	assert.Equal(t, "", config.GetString("anything"))
}
