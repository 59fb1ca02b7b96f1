package main

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/vaughan0/go-ini"
)

type Config struct {
	GamePath     string
	RegistryPath string
}

func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "ckan", "config.ini")
}

func parseConfig(path string) (*Config, error) {
	config := Config{}

	file, err := ini.LoadFile(path)
	if err != nil {
		// A missing default config is fine; an explicitly given one is not.
		if os.IsNotExist(err) && path == defaultConfigPath() {
			config.GamePath = os.Getenv("KSP_PATH")
			return &config, nil
		}
		return nil, err
	}

	config.GamePath = getFromEnvOrConfig("KSP_PATH", file, "", "game_path")
	if dir, ok := file.Get("", "registry_path"); ok {
		config.RegistryPath = dir
	}

	return &config, nil
}
