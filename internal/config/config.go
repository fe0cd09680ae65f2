package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds CLI defaults. Flags override every field.
type Config struct {
	// Format of input descriptions; empty means infer from the extension.
	Format string `mapstructure:"format"`
	// Strategy used to build trees: window, poly or arena.
	Strategy string `mapstructure:"strategy"`
	// Select is a JSONPath applied to JSON input.
	Select string `mapstructure:"select"`
	// Enumerator style for tree output: default or rounded.
	Enumerator string `mapstructure:"enumerator"`
	// Package and Func name generated Go code.
	Package string `mapstructure:"package"`
	Func    string `mapstructure:"func"`
}

// Load reads configuration from file and env. Env var overrides use prefix MOSAIC_.
// The file is $MOSAIC_CONFIG when set, otherwise config.yaml under
// $HOME/.config/mosaic if present.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("format", "")
	v.SetDefault("strategy", "poly")
	v.SetDefault("select", "")
	v.SetDefault("enumerator", "default")
	v.SetDefault("package", "main")
	v.SetDefault("func", "Build")

	cfgPath := os.Getenv("MOSAIC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mosaic"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MOSAIC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case cfgPath != "":
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		case !errors.As(err, &notFound):
			log.Printf("config: ignoring %v", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
