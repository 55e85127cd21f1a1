package main

import (
	urfavecli "github.com/urfave/cli/v2"
)

func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "config",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "File currently open in the editor; its directory selects the repository",
		},
		&urfavecli.BoolFlag{
			Name:    "print",
			Aliases: []string{"p"},
			Usage:   "Print the chosen path instead of opening it",
		},
		&urfavecli.BoolFlag{
			Name:  "icons",
			Usage: "Show file type icons (overrides config)",
		},
	}
}
