package hermconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/Pilan-AI/hermes-lang/cmds"
	"github.com/Pilan-AI/hermes-lang/configs"
	"github.com/Pilan-AI/hermes-lang/logs"
	"github.com/Pilan-AI/hermes-lang/modes"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config", "load an additional config file, before the discovered ones")

// ConfigPaths lists config files in precedence order.
type ConfigPaths []string

func (Module) ConfigPaths(
	mode modes.Mode,
) (paths ConfigPaths) {

	paths = append(paths, *configFlag...)

	if mode == modes.ModeDevelopment {
		// never pick up files from the machine running the tests
		return
	}

	filenames := []string{
		"hermes.cue",
		".hermes.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return
}

func (Module) ConfigsLoader(
	paths ConfigPaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
