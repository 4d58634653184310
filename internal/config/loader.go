package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names for configurations that did not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

const mazeChaseFile = "mazechase.yaml"

// LoadMazeChase loads Maze Chase configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/mazechase.yaml ->
// ./configs/mazechase.yaml -> embedded default -> DefaultMazeChaseConfig.
//
// Files are decoded on top of the defaults, so a file may set only the keys it
// cares about. A customPath that cannot be read or parsed is an error; the
// other locations are skipped on failure.
func LoadMazeChase(customPath string) (MazeChaseConfig, string, error) {
	if customPath != "" {
		cfg, err := readMazeChase(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths(mazeChaseFile) {
		if cfg, err := readMazeChase(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultMazeChaseConfig()
	if err := yaml.Unmarshal(defaultMazeChaseYAML, &cfg); err != nil {
		return DefaultMazeChaseConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func readMazeChase(path string) (MazeChaseConfig, error) {
	cfg := DefaultMazeChaseConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultMazeChaseConfig(), fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the non-custom config locations in priority order.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
