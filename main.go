package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var commands []*cli.Command

func newApp() *cli.App {
	return &cli.App{
		Name:                   "bares",
		Usage:                  "Check arithmetic expressions against the bares grammar",
		UseShortOptionHandling: true,
		Flags:                  checkFlags(),
		Action:                 check,
		Commands:               commands,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		if _, ok := err.(cli.ExitCoder); !ok {
			color.Red("Error: %s", err)
		}
		os.Exit(1)
	}
}
