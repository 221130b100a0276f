package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erickos/bares/lib/project"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a default " + project.FileName + " to a directory",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Default output format: text, yaml or json",
				Value: "text",
			},
			&cli.BoolFlag{
				Name:    "tokens",
				Aliases: []string{"t"},
				Usage:   "Print tokens by default",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing " + project.FileName,
			},
		},
		Action: initConfig,
	})
}

func initConfig(c *cli.Context) error {
	rootDir := c.Args().First()
	if rootDir == "" {
		rootDir = "."
	}

	if _, err := os.Stat(rootDir); os.IsNotExist(err) {
		if err := os.MkdirAll(rootDir, 0755); err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, "Created directory:", rootDir)
	}

	conf := project.Default()
	conf.Format = c.String("format")
	conf.Tokens = c.Bool("tokens")
	if err := conf.Validate(); err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	path := filepath.Join(rootDir, project.FileName)
	if err := conf.Save(path, c.Bool("force")); err != nil {
		return cli.Exit(color.RedString("Error writing config: %s", err), 1)
	}
	fmt.Fprintln(c.App.Writer, "Created file:", path)
	return nil
}
