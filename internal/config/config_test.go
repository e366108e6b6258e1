package config

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tremolo/pkg/dto"
)

func newTestConfiguration() *configuration {
	return &configuration{
		Franchise: franchise{
			BootstrapFile: "",
		},
		Logger: logger{
			Level:     "INFO",
			Formatter: dto.FormatterText,
		},
	}
}

func (c *configuration) getReflectValue() reflect.Value {
	return reflect.ValueOf(c).Elem()
}

func TestStringEnvironmentVariableOverwritesConfig(t *testing.T) {
	config := newTestConfiguration()
	_ = os.Setenv("TREMOLO_TEST_LOGGER_LEVEL", "DEBUG")
	readFromEnvironment("TREMOLO_TEST", config.getReflectValue())
	_ = os.Unsetenv("TREMOLO_TEST_LOGGER_LEVEL")
	assert.Equal(t, "DEBUG", config.Logger.Level)
}

func TestNestedStringEnvironmentVariableOverwritesConfig(t *testing.T) {
	config := newTestConfiguration()
	_ = os.Setenv("TREMOLO_TEST_FRANCHISE_BOOTSTRAPFILE", "./franchise.yaml")
	readFromEnvironment("TREMOLO_TEST", config.getReflectValue())
	_ = os.Unsetenv("TREMOLO_TEST_FRANCHISE_BOOTSTRAPFILE")
	assert.Equal(t, "./franchise.yaml", config.Franchise.BootstrapFile)
}

func TestUnsetEnvironmentVariableDoesNotChangeConfig(t *testing.T) {
	config := newTestConfiguration()
	readFromEnvironment("TREMOLO_TEST", config.getReflectValue())
	assert.Equal(t, "INFO", config.Logger.Level)
}

func TestStringYamlVariableOverwritesConfig(t *testing.T) {
	config := newTestConfiguration()
	config.mergeYaml([]byte("logger:\n  level: DEBUG\n"))
	assert.Equal(t, "DEBUG", config.Logger.Level)
}

func TestFormatterYamlVariableOverwritesConfig(t *testing.T) {
	config := newTestConfiguration()
	config.mergeYaml([]byte("logger:\n  formatter: JSONFormatter\n"))
	assert.Equal(t, dto.Formatter(dto.FormatterJSON), config.Logger.Formatter)
}

func TestMissingYamlVariableDoesNotChangeConfig(t *testing.T) {
	config := newTestConfiguration()
	config.mergeYaml([]byte(""))
	assert.Equal(t, "INFO", config.Logger.Level)
}

func TestUnsetYamlVariableDoesNotChangeConfig(t *testing.T) {
	config := newTestConfiguration()
	config.mergeYaml([]byte("logger:\n  level:\n"))
	assert.Equal(t, "INFO", config.Logger.Level)
}

func TestCallingInitConfigTwiceReturnsError(t *testing.T) {
	configurationInitialized = false
	err := InitConfig()
	require.NoError(t, err)
	err = InitConfig()
	assert.ErrorIs(t, err, ErrConfigInitialized)
}
