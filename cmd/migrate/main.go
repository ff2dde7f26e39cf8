// Command migrate applies or rolls back the schema migrations embedded in
// the database package.
//
//	migrate up         apply all pending migrations
//	migrate down       roll back the last migration
//	migrate goto N     migrate up or down to version N
//	migrate version    print the current version
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mini-blog-api/internal/config"
	"github.com/mini-blog-api/internal/database"
	"github.com/mini-blog-api/pkg/logger"
)

const usageText = "usage: migrate up | down | goto N | version"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one migration command and returns the process exit code.
// Returning instead of exiting lets the deferred Close run.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || (args[0] == "goto" && len(args) != 2) {
		fmt.Fprintln(stderr, usageText)
		return 2
	}

	var version uint64
	switch args[0] {
	case "up", "down", "version":
	case "goto":
		v, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			fmt.Fprintf(stderr, "invalid version %q: %v\n", args[1], err)
			return 2
		}
		version = v
	default:
		fmt.Fprintln(stderr, usageText)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	log := logger.New(cfg.Log)

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return 1
	}
	defer db.Close()

	switch args[0] {
	case "up":
		err = db.RunMigrations()
	case "down":
		err = db.MigrateDown()
	case "goto":
		err = db.MigrateToVersion(uint(version))
	case "version":
		v, dirty, verr := db.MigrationVersion()
		if verr == nil {
			fmt.Fprintf(stdout, "version %d (dirty: %t)\n", v, dirty)
		}
		err = verr
	}

	if err != nil {
		log.Error().Err(err).Str("command", args[0]).Msg("Migration command failed")
		return 1
	}
	return 0
}
