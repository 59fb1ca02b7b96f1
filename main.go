package main

import (
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/fat-lobyte/CKAN/cli"
)

func main() {
	opts, index, err := getopt.Getopts(os.Args, "c:g:r:")
	if err != nil {
		abort(err)
	}

	configPath := defaultConfigPath()
	var gamePath, registryPath string
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			configPath = opt.Value
		case 'g':
			gamePath = opt.Value
		case 'r':
			registryPath = opt.Value
		}
	}

	cfg, err := parseConfig(configPath)
	if err != nil {
		abort(err)
	}
	if gamePath != "" {
		cfg.GamePath = gamePath
	}
	if registryPath != "" {
		cfg.RegistryPath = registryPath
	}

	cli.Run(cli.Options{
		GamePath:     cfg.GamePath,
		RegistryPath: cfg.RegistryPath,
	}, os.Args[index:])
}
