package main

import (
	"os"

	"github.com/firdawws/massive-tools/internal/pkg/cli"
	"github.com/firdawws/massive-tools/internal/pkg/env"
	"github.com/firdawws/massive-tools/internal/pkg/filesystem"
)

func main() {
	// Run command
	cmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, env.FromOs(), filesystem.NewLocalFs())
	os.Exit(cmd.Execute())
}
