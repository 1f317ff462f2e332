package helptext

// NewCommand creates and returns a new Command object. This function takes
// variadic ConfigureCommandFunc functions to customize the created command.
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	command := &Command{Name: name}
	for _, config := range configs {
		config(command)
	}

	return command
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithCommandHelp sets the description shown for the command in the command
// list and used as its help text.
func WithCommandHelp(help string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Help = help
	}
}

// WithOptions appends options to the command, preserving declaration order.
func WithOptions(options ...*Option) ConfigureCommandFunc {
	return func(command *Command) {
		command.Options = append(command.Options, options...)
	}
}

// WithParameters appends positional parameters to the command, preserving
// declaration order.
func WithParameters(parameters ...*Parameter) ConfigureCommandFunc {
	return func(command *Command) {
		command.Parameters = append(command.Parameters, parameters...)
	}
}

// SetCommandHidden excludes the command from all rendered help output.
func SetCommandHidden(hidden bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.Hidden = hidden
	}
}
