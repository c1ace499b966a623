package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/expenselog/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// optional .env file for EXPENSELOG_* defaults
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
