package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/config"
)

// defaultConfigName is the optional run config looked up in the
// working directory when --config is not given.
const defaultConfigName = "quizanalyze.yml"

// loadRunConfig loads the run configuration. An explicit path must
// load; the default name is consulted only when the file exists.
func loadRunConfig(path string) (config.Run, error) {
	if strings.TrimSpace(path) != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigName); err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		return config.Run{}, fmt.Errorf("stat %s: %w", defaultConfigName, err)
	}
	return config.Load(defaultConfigName)
}
