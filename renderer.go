package helptext

import "strings"

// row is one line item of the tabular part of a help page.
type row struct {
	header string
	text   string
}

// commandListTokens is the fixed usage syntax of the command-list page. It is
// deliberately a literal rather than an enumeration of command names.
var commandListTokens = []string{"<command>", "[<args>]"}

// showCommandList reports whether the snapshot renders as a command-list
// page: no active command and at least one visible command.
func (s *HelpSnapshot) showCommandList() bool {
	return s.activeCommand == "" && s.commands.Len() > 0
}

// target resolves the operation a command-detail page describes. The command
// is nil when the page describes the application root, which is also the
// fallback when the active name matches no visible command.
func (s *HelpSnapshot) target() (*CommandDescriptor, operation) {
	if command, found := s.Command(s.activeCommand); found {
		return command, command
	}

	return nil, s
}

// syntaxTokens derives the ordered usage-line fragments for the snapshot's
// page: the fixed pair for the command list, or the command name, bracketed
// options, the conventional "[--]" separator, and bare parameters for a
// detail page.
func (s *HelpSnapshot) syntaxTokens() []string {
	if s.showCommandList() {
		return commandListTokens
	}

	command, op := s.target()
	options := op.Options()
	parameters := op.Parameters()

	var tokens []string
	if command != nil {
		tokens = append(tokens, command.Name())
	}
	for _, option := range options {
		tokens = append(tokens, optionToken(option))
	}
	if len(options) > 0 && len(parameters) > 0 {
		tokens = append(tokens, "[--]")
	}
	for _, parameter := range parameters {
		tokens = append(tokens, parameterToken(parameter))
	}

	return tokens
}

// helpRows derives the (header, text) rows for the snapshot's page: one row
// per visible command on the list page, or the options followed by the
// parameters of the target operation on a detail page.
func (s *HelpSnapshot) helpRows() []row {
	var rows []row

	if s.showCommandList() {
		for _, command := range s.Commands() {
			rows = append(rows, row{header: command.Name(), text: command.Help()})
		}
		return rows
	}

	_, op := s.target()
	for _, option := range op.Options() {
		rows = append(rows, row{header: argumentHeader(option), text: option.Help()})
	}
	for _, parameter := range op.Parameters() {
		rows = append(rows, row{header: argumentHeader(parameter), text: parameter.Help()})
	}

	return rows
}

// optionToken renders one option as a usage-line fragment, e.g. "[--verbose]",
// "[--count <arg>]", or "[--tag [arg]...]".
func optionToken(option *OptionDescriptor) string {
	token := "[" + option.DisplayName() + optionValue(option)
	if option.IsList() {
		token += "..."
	}

	return token + "]"
}

// parameterToken renders one parameter as a usage-line fragment, e.g. "files"
// or "files...".
func parameterToken(parameter *ParameterDescriptor) string {
	token := parameter.DisplayName()
	if parameter.IsList() {
		token += "..."
	}

	return token
}

// argumentHeader renders the header column of an argument row: every accepted
// spelling joined with ", ", the value placeholder for non-flag options, and
// a trailing ellipsis for list arguments.
func argumentHeader(argument Descriptor) string {
	header := strings.Join(argument.DisplayNames(), ", ")
	if option, ok := argument.(*OptionDescriptor); ok {
		header += optionValue(option)
	}
	if argument.IsList() {
		header += "..."
	}

	return header
}

// optionValue renders the value placeholder of an option: "" for flags,
// " <arg>" when the value is required, " [arg]" when it is optional.
func optionValue(option *OptionDescriptor) string {
	switch {
	case option.IsFlag():
		return ""
	case option.IsValueRequired():
		return " <arg>"
	default:
		return " [arg]"
	}
}
