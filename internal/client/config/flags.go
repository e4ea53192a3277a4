package config

import (
	"flag"
	"os"

	"github.com/Zeldris69240/reqres-app/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the directory service (default from Config)
//	-v          verbose request logging
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the directory service")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose request logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
