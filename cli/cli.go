package cli

import (
	ckan "github.com/fat-lobyte/CKAN/lib"
)

const usageStr string = `usage: ckan [-c <file>] [-g <dir>] [-r <dir>] <command> [args...]
commands:
	check   [mods...]          Check mod compatibility against the installed game version
	hull    [args...]          Print the bounding interval of the given versions or ranges
	help                       Show usage information
	list                       List all mods in the registry
	version                    Print the installed game version`

// Options carries the resolved configuration from the entry point.
type Options struct {
	GamePath     string
	RegistryPath string
}

func Run(opts Options, args []string) {
	if len(args) == 0 {
		printUsage("no operation was specified")
	}

	var task func(*ckan.Manager, []string)
	switch args[0] {
	case "check", "c":
		task = check
	case "help", "h", "-h", "--help", "-help":
		printUsage()
	case "hull":
		// Pure range arithmetic, no game directory needed.
		hull(args[1:])
		return
	case "list", "ls":
		task = list
	case "version", "v":
		task = version
	default:
		printUsage("unrecognized operation", args[0])
	}
	args = args[1:]

	// The game path comes from the flag, the config file, or KSP_PATH,
	// in that order; fall back to the working directory.
	gamePath := opts.GamePath
	if gamePath == "" {
		gamePath = "."
	}
	manager, err := ckan.NewManager(gamePath, opts.RegistryPath)
	if err != nil {
		abort(err)
	}

	task(manager, args)
}
