package sat

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ConfigPath points to an optional json file mapping solver names to executable
// paths, e.g. {"glucose": "/opt/glucose/glucose-syrup"}. Solvers absent from the
// config resolve through PATH under their own name.
var ConfigPath = "config.json"

func executablePath(solver string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return solver
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return solver
	}

	var config map[string]string
	mapstructure.Decode(configJson, &config)

	if path, ok := config[solver]; ok {
		return path
	}
	return solver
}
