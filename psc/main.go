// Command psc tracks the purchases and sales of a seafood shop and tells whether it makes a profit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/pescados/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is the common case.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: cannot load .env: %v\n", err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// Handles COMP_LINE and COMP_INSTALL/COMP_UNINSTALL, and exits when it did.
	cmd.Completion(commander).Complete(path.Base(os.Args[0]))

	flag.Parse()

	if name := flag.Arg(0); name != "" && !isRegistered(commander, name) {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func isRegistered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, command subcommands.Command) {
		if command.Name() == name {
			found = true
		}
	})
	return found
}
