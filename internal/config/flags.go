package config

import (
	"flag"
	"os"

	"github.com/akoreshkova/patternlock/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   store backend: memory | sqlite | postgres
//	-d string   database DSN (sqlite path or Postgres DSN)
//	-t int      match tolerance, pixels
//	-m int      max failed attempts per session
//	-s string   session token secret key
//	-hard       use Argon2id commitments
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config stage.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-t", "-m", "-s", "-hard"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StoreBackend, "b", config.StoreBackend, "store backend (memory|sqlite|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.Tolerance, "t", config.Tolerance, "match tolerance in pixels")
	fs.IntVar(&config.MaxAttempts, "m", config.MaxAttempts, "max failed attempts per session")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.BoolVar(&config.Hardened, "hard", config.Hardened, "use Argon2id commitments")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
