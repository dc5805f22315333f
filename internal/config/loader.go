package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. explicit path (returned even when missing so the caller can report it)
// 2. DOCDIFF_CONFIG_PATH environment variable
// 3. config.yaml, then config.json, in the current working directory
// 4. config.yaml, then config.json, in the executable's directory
// An empty result means no config file was found.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		return configFilePathFlag
	}

	if envPath := os.Getenv(ConfigPathEnv); envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
	}

	var locations []string
	cwd, errCwd := os.Getwd()
	if errCwd == nil {
		locations = append(locations, cwd)
	}
	if exePath, err := os.Executable(); err == nil {
		if exeDir := filepath.Dir(exePath); errCwd != nil || exeDir != cwd {
			locations = append(locations, exeDir)
		}
	}

	for _, loc := range locations {
		for _, file := range []string{"config.yaml", "config.json"} {
			path := filepath.Join(loc, file)
			if fileExists(path) {
				return path
			}
		}
	}
	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
