package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults offered by the notebook prompts
type Config struct {
	NotebookName string
	Classes      string
	Extension    string
	Template     bool
}

// Settings represents the config file structure
type Settings struct {
	NotebookName string `yaml:"default_notebook_name,omitempty"`
	Classes      string `yaml:"default_classes,omitempty"`
	Extension    string `yaml:"default_extension,omitempty"`
	Template     *bool  `yaml:"default_template,omitempty"`
}

// Load loads configuration with priority: env vars > config file > default
func Load() (*Config, error) {
	cfg := &Config{
		NotebookName: "Notebook",
		Classes:      "class1,class2,class3",
		Extension:    "md",
		Template:     true,
	}

	configPath, err := Path()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.NotebookName != "" {
				cfg.NotebookName = fileConfig.NotebookName
			}
			if fileConfig.Classes != "" {
				cfg.Classes = fileConfig.Classes
			}
			if fileConfig.Extension != "" {
				cfg.Extension = strings.TrimPrefix(fileConfig.Extension, ".")
			}
			if fileConfig.Template != nil {
				cfg.Template = *fileConfig.Template
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// Environment variables override the config file
	if v := os.Getenv("NOTECLI_NOTEBOOK_NAME"); v != "" {
		cfg.NotebookName = v
	}
	if v := os.Getenv("NOTECLI_CLASSES"); v != "" {
		cfg.Classes = v
	}
	if v := os.Getenv("NOTECLI_EXTENSION"); v != "" {
		cfg.Extension = strings.TrimPrefix(v, ".")
	}

	return cfg, nil
}

// Path returns the config file location, NOTECLI_CONFIG if set.
func Path() (string, error) {
	if p := os.Getenv("NOTECLI_CONFIG"); p != "" {
		return expandPath(p), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "notecli", "config.yaml"), nil
}

// LogDir returns the directory holding debug.log
func LogDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cacheDir, "notecli")
}

func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	template := true
	settings := Settings{
		NotebookName: "Notebook",
		Classes:      "class1,class2,class3",
		Extension:    "md",
		Template:     &template,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
