package sat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutablePathFromConfig(t *testing.T) {
	// Arrange
	config := filepath.Join(t.TempDir(), "config.json")
	assert.NoError(t, os.WriteFile(config, []byte(`{"glucose": "/opt/glucose/glucose-syrup"}`), 0666))

	previous := ConfigPath
	ConfigPath = config
	defer func() { ConfigPath = previous }()

	// Act & Assert
	assert.Equal(t, "/opt/glucose/glucose-syrup", executablePath("glucose"))
	assert.Equal(t, "kissat", executablePath("kissat")) // not in config: PATH lookup
}

func TestExecutablePathWithoutConfig(t *testing.T) {
	previous := ConfigPath
	ConfigPath = filepath.Join(t.TempDir(), "missing.json")
	defer func() { ConfigPath = previous }()

	assert.Equal(t, "glucose", executablePath("glucose"))
}
