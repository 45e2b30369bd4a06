package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	appName    = "cave"
	configName = "config"
	configType = "toml"
	envPrefix  = "CAVE"

	HistoryPathKey  = "history.path"
	MessagesPathKey = "messages.path"
	LogLevelKey     = "log.level"
	LogFileKey      = "log.file"

	defaultLogLevel = "warn"
	configFileMode  = 0o600
	configDirMode   = 0o700
)

var ErrConfigExists = errors.New("config file already exists")

type Config struct {
	History  FileConfig `toml:"history"`
	Messages FileConfig `toml:"messages"`
	Log      LogConfig  `toml:"log"`
}

type FileConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// Load reads config.toml from the XDG config directory, then CAVE_* environment overrides.
// A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	xdg.Reload()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(Dir())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(HistoryPathKey, filepath.Join(DataDir(), "history.json"))
	v.SetDefault(MessagesPathKey, filepath.Join(DataDir(), "messages.json"))
	v.SetDefault(LogLevelKey, defaultLogLevel)
	v.SetDefault(LogFileKey, "")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	historyPath, err := normalizePath(v.GetString(HistoryPathKey))
	if err != nil {
		return Config{}, fmt.Errorf("history path: %w", err)
	}
	messagesPath, err := normalizePath(v.GetString(MessagesPathKey))
	if err != nil {
		return Config{}, fmt.Errorf("messages path: %w", err)
	}

	return Config{
		History:  FileConfig{Path: historyPath},
		Messages: FileConfig{Path: messagesPath},
		Log: LogConfig{
			Level: v.GetString(LogLevelKey),
			File:  v.GetString(LogFileKey),
		},
	}, nil
}

func Dir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

func DataDir() string {
	return filepath.Join(xdg.DataHome, appName)
}

func FilePath() string {
	return filepath.Join(Dir(), configName+"."+configType)
}

func Encode(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return data, nil
}

// Write stores cfg at path. It refuses to replace an existing file unless force is set.
func Write(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, configFileMode); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func normalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}

	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}

	absPath, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
