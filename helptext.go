// Package helptext renders help pages for command-line applications from a
// structured description of their commands, options, and positional
// parameters. A HelpSnapshot is projected from an App once per help request
// and rendered into plain text bounded by a maximum line width, with
// word-wrapped, column-aligned descriptions.
package helptext

import (
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/napalu/helptext/internal/wordwrap"
)

// HelpSnapshot is the complete, point-in-time metadata view used for a single
// help render. It is immutable once built; construct a fresh one per request
// with NewSnapshot.
type HelpSnapshot struct {
	appName       string
	activeCommand string
	commands      *orderedmap.OrderedMap
	options       []*OptionDescriptor
	parameters    []*ParameterDescriptor
}

// NewSnapshot projects the help metadata for app, excluding every option,
// parameter, and command marked hidden. activeCommand selects the command to
// describe; pass the empty string for the top-level page. The projection is
// pure: empty or absent schema elements yield empty sequences, never errors.
func NewSnapshot(app *App, activeCommand string) *HelpSnapshot {
	snapshot := &HelpSnapshot{
		appName:       app.Name,
		activeCommand: activeCommand,
		commands:      orderedmap.New(),
		options:       describeOptions(app.Options),
		parameters:    describeParameters(app.Parameters),
	}

	for _, command := range app.Commands {
		if command.Hidden {
			continue
		}
		snapshot.commands.Set(command.Name, &CommandDescriptor{
			name:       command.Name,
			help:       command.Help,
			options:    describeOptions(command.Options),
			parameters: describeParameters(command.Parameters),
		})
	}

	return snapshot
}

func describeOptions(options []*Option) []*OptionDescriptor {
	descriptors := make([]*OptionDescriptor, 0, len(options))
	for _, option := range options {
		if option.Hidden {
			continue
		}
		names := []string{"--" + option.Name}
		if option.Short != "" {
			names = append(names, "-"+option.Short)
		}
		descriptors = append(descriptors, &OptionDescriptor{
			names:         names,
			help:          option.Help,
			list:          option.List,
			flag:          option.Flag,
			valueRequired: option.ValueRequired,
		})
	}

	return descriptors
}

func describeParameters(parameters []*Parameter) []*ParameterDescriptor {
	descriptors := make([]*ParameterDescriptor, 0, len(parameters))
	for _, parameter := range parameters {
		if parameter.Hidden {
			continue
		}
		descriptors = append(descriptors, &ParameterDescriptor{
			names: []string{parameter.Name},
			help:  parameter.Help,
			list:  parameter.List,
		})
	}

	return descriptors
}

// AppName returns the application name shown on the usage line.
func (s *HelpSnapshot) AppName() string {
	return s.appName
}

// ActiveCommand returns the selected command name, or the empty string when
// no command is selected.
func (s *HelpSnapshot) ActiveCommand() string {
	return s.activeCommand
}

// Commands returns the visible commands in declaration order.
func (s *HelpSnapshot) Commands() []*CommandDescriptor {
	commands := make([]*CommandDescriptor, 0, s.commands.Len())
	for pair := s.commands.Oldest(); pair != nil; pair = pair.Next() {
		commands = append(commands, pair.Value.(*CommandDescriptor))
	}

	return commands
}

// Command looks up a visible command by name.
func (s *HelpSnapshot) Command(name string) (*CommandDescriptor, bool) {
	value, found := s.commands.Get(name)
	if !found {
		return nil, false
	}

	return value.(*CommandDescriptor), true
}

// Options returns the root-level visible options in declaration order.
func (s *HelpSnapshot) Options() []*OptionDescriptor {
	return s.options
}

// Parameters returns the root-level visible parameters in declaration order.
func (s *HelpSnapshot) Parameters() []*ParameterDescriptor {
	return s.parameters
}

// Render produces the help page for the snapshot as a single string bounded
// by maxWidth columns. Lines are separated by '\n'. Render is a pure
// function of the snapshot and the width; rendering the same snapshot twice
// yields identical output, and independent calls are safe concurrently.
//
// The page shape is selected from the snapshot: when no command is active and
// the application has visible commands, the command list is rendered;
// otherwise the detail page of the active command, falling back to the
// application root when the active name matches no visible command.
func (s *HelpSnapshot) Render(maxWidth int) string {
	lines := s.usageLines(maxWidth)

	rows := s.helpRows()
	if len(rows) > 0 {
		lines = append(lines, "")
		lines = append(lines, renderRows(rows, maxWidth)...)
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n") + "\n"
}

// Print writes the rendered help page to writer.
func (s *HelpSnapshot) Print(writer io.Writer, maxWidth int) {
	_, _ = writer.Write([]byte(s.Render(maxWidth)))
}

// usageLines renders the usage block: a fixed header followed by the
// word-wrapped syntax tokens with a hanging indent aligned one column past
// the header.
func (s *HelpSnapshot) usageLines(maxWidth int) []string {
	header := usagePrefix + s.appName
	tokens := s.syntaxTokens()
	if len(tokens) == 0 {
		return []string{header}
	}

	indent := len(header) + 1
	wrapped := wordwrap.Wrap(tokens, maxWidth-indent)
	lines := make([]string, 0, len(wrapped))
	for i, line := range wrapped {
		if i == 0 {
			lines = append(lines, header+" "+line)
		} else {
			lines = append(lines, strings.Repeat(" ", indent)+line)
		}
	}

	return lines
}

// renderRows lays the (header, text) rows out in two columns: headers
// indented by one indentUnit, text word-wrapped with a hanging indent at
// helpStart. When the header column alone exceeds maxWidth the help width
// falls back to the full maxWidth instead of going negative; alignment is
// sacrificed but the text still renders.
func renderRows(rows []row, maxWidth int) []string {
	headerWidth := 0
	for _, r := range rows {
		if len(r.header) > headerWidth {
			headerWidth = len(r.header)
		}
	}

	helpStart := headerWidth + 2*indentUnit
	helpWidth := maxWidth - helpStart
	if helpWidth < 0 {
		helpWidth = maxWidth
	}

	var lines []string
	for _, r := range rows {
		head := strings.Repeat(" ", indentUnit) + r.header
		wrapped := wordwrap.Wrap(strings.Fields(r.text), helpWidth)
		if len(wrapped) == 0 {
			lines = append(lines, head)
			continue
		}
		lines = append(lines, head+strings.Repeat(" ", helpStart-len(head))+wrapped[0])
		for _, continuation := range wrapped[1:] {
			lines = append(lines, strings.Repeat(" ", helpStart)+continuation)
		}
	}

	return lines
}
