// Package main is the entry point for the scriptcomplete CLI application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	sccli "github.com/NikitaCOEUR/scriptcomplete/internal/cli"
	"github.com/NikitaCOEUR/scriptcomplete/pkg/version"
	"github.com/urfave/cli/v3"
)

// inputFlags describe the edited text and the caret position
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "line",
			Aliases: []string{"l"},
			Usage:   "Single line of text, caret at the end unless --col is set",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "File to edit, - for stdin",
		},
		&cli.IntFlag{
			Name:  "row",
			Usage: "1-based caret row in --file (default: last line)",
		},
		&cli.IntFlag{
			Name:  "col",
			Value: -1,
			Usage: "Caret column in bytes (default: end of line)",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "Fuzzy filter applied to candidate names",
		},
	}
}

func inputParams(cmd *cli.Command, stdin io.Reader) sccli.InputParams {
	return sccli.InputParams{
		Line:  cmd.String("line"),
		File:  cmd.String("file"),
		Row:   cmd.Int("row"),
		Col:   cmd.Int("col"),
		Stdin: stdin,
	}
}

func newApp(stdout io.Writer, stdin io.Reader) *cli.Command {
	return &cli.Command{
		Name:                  "scriptcomplete",
		Usage:                 "Trigger-driven snippet completion for addon scripts",
		Version:               version.Version,
		EnableShellCompletion: true,
		Writer:                stdout,
		Reader:                stdin,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error), overrides the config",
				Sources: cli.EnvVars("SCRIPTCOMPLETE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file (default: local .scriptcomplete.yml, then the global config)",
				Sources: cli.EnvVars("SCRIPTCOMPLETE_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "candidates",
				Usage: "List completion candidates at the caret",
				Flags: append(inputFlags(),
					&cli.StringFlag{
						Name:  "format",
						Value: sccli.FormatPretty,
						Usage: "Output format: pretty, plain or json",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Shorthand for --format json",
					},
					&cli.IntFlag{
						Name:  "width",
						Usage: "Picker width in cells",
					},
				),
				Action: func(_ context.Context, cmd *cli.Command) error {
					format := cmd.String("format")
					if cmd.Bool("json") {
						format = sccli.FormatJSON
					}
					return sccli.Candidates(sccli.CandidatesParams{
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						Input:      inputParams(cmd, stdin),
						Filter:     cmd.String("filter"),
						Format:     format,
						Width:      cmd.Int("width"),
						Out:        stdout,
					})
				},
			},
			{
				Name:  "expand",
				Usage: "Run one candidate and print the resulting text",
				Flags: append(inputFlags(),
					&cli.StringFlag{
						Name:    "pick",
						Aliases: []string{"p"},
						Usage:   "Name of the candidate to run",
					},
					&cli.IntFlag{
						Name:    "index",
						Aliases: []string{"n"},
						Usage:   "1-based position of the candidate to run",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print text, caret and selection as JSON",
					},
				),
				Action: func(_ context.Context, cmd *cli.Command) error {
					return sccli.Expand(sccli.ExpandParams{
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						Input:      inputParams(cmd, stdin),
						Filter:     cmd.String("filter"),
						Pick:       cmd.String("pick"),
						Index:      cmd.Int("index"),
						JSON:       cmd.Bool("json"),
						Out:        stdout,
					})
				},
			},
			{
				Name:  "rules",
				Usage: "List trigger rules in the order they are tried",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return sccli.Rules(sccli.RulesParams{
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						Out:        stdout,
					})
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample config file in current folder or global config",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "global",
						Aliases: []string{"g"},
						Usage:   "Create global config file instead of local",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return sccli.Init(cmd.Bool("global"), "", stdout)
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a scriptcomplete configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := cmd.String("config")
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return sccli.Validate(configPath, stdout)
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for scriptcomplete configuration files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return sccli.Schema(outputPath, stdout)
				},
			},
		},
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stdin).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
