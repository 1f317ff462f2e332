// Command helpview renders the help pages of a sample application schema,
// useful for previewing layout behavior at different widths.
//
// Examples:
//
//	helpview                      # command list at the terminal width
//	helpview -run "demo build"    # detail page for the build command
//	helpview -width 40            # force a narrow layout
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/shlex"

	"github.com/napalu/helptext"
	"github.com/napalu/helptext/util"
)

func main() {
	width := flag.Int("width", 0, "maximum line width, 0 detects the terminal width")
	run := flag.String("run", "", "command line whose first recognized word selects the active command")
	flag.Parse()

	app := sampleApp()

	active := ""
	if *run != "" {
		words, err := shlex.Split(*run)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		active = activeCommand(app, words)
	}

	maxWidth := *width
	if maxWidth <= 0 {
		maxWidth = util.TerminalWidth(int(os.Stdout.Fd()), 80, nil)
	}

	helptext.NewSnapshot(app, active).Print(os.Stdout, maxWidth)
}

// activeCommand returns the first word that names a visible command, skipping
// the program name and anything that looks like an option.
func activeCommand(app *helptext.App, words []string) string {
	for i, word := range words {
		if i == 0 || len(word) == 0 || word[0] == '-' {
			continue
		}
		for _, command := range app.Commands {
			if !command.Hidden && command.Name == word {
				return word
			}
		}
	}

	return ""
}

func sampleApp() *helptext.App {
	return helptext.NewApp("demo",
		helptext.WithCommands(
			helptext.NewCommand("build",
				helptext.WithCommandHelp("Compile the project into a distributable artifact"),
				helptext.WithOptions(
					helptext.NewOption("output", helptext.WithShort("o"),
						helptext.WithHelp("Write the artifact to the given path"),
						helptext.SetValueRequired(true)),
					helptext.NewOption("verbose", helptext.WithShort("v"),
						helptext.WithHelp("Print each compilation step"),
						helptext.AsFlag()),
				),
				helptext.WithParameters(
					helptext.NewParameter("target",
						helptext.WithParameterHelp("Build targets, defaults to the current directory"),
						helptext.SetParameterList(true)),
				),
			),
			helptext.NewCommand("test",
				helptext.WithCommandHelp("Run the test suite"),
				helptext.WithOptions(
					helptext.NewOption("run",
						helptext.WithHelp("Only run tests matching the given pattern"),
						helptext.SetValueRequired(true)),
				),
			),
			helptext.NewCommand("clean",
				helptext.WithCommandHelp("Remove build artifacts"),
			),
		),
	)
}
