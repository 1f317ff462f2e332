package helptext

// Descriptor is the read-only view of one argument shared by options and
// parameters. DisplayNames lists every accepted spelling with the primary
// form first; the primary form is the one shown on the usage line.
type Descriptor interface {
	DisplayName() string
	DisplayNames() []string
	Help() string
	IsList() bool
}

// OptionDescriptor is the immutable help-time view of an Option.
type OptionDescriptor struct {
	names         []string
	help          string
	list          bool
	flag          bool
	valueRequired bool
}

// DisplayName returns the primary rendered form of the option, e.g. "--count".
func (o *OptionDescriptor) DisplayName() string {
	return o.names[0]
}

// DisplayNames returns every accepted spelling, primary form first.
func (o *OptionDescriptor) DisplayNames() []string {
	names := make([]string, len(o.names))
	copy(names, o.names)

	return names
}

// Help returns the option's help text, which may be empty.
func (o *OptionDescriptor) Help() string {
	return o.help
}

// IsList reports whether the option may be given more than once.
func (o *OptionDescriptor) IsList() bool {
	return o.list
}

// IsFlag reports whether the option is a boolean switch taking no value.
func (o *OptionDescriptor) IsFlag() bool {
	return o.flag
}

// IsValueRequired reports whether a non-flag option requires its value.
// Meaningless when IsFlag is true.
func (o *OptionDescriptor) IsValueRequired() bool {
	return o.valueRequired
}

// ParameterDescriptor is the immutable help-time view of a Parameter.
type ParameterDescriptor struct {
	names []string
	help  string
	list  bool
}

// DisplayName returns the rendered form of the parameter, e.g. "files".
func (p *ParameterDescriptor) DisplayName() string {
	return p.names[0]
}

// DisplayNames returns every accepted spelling of the parameter.
func (p *ParameterDescriptor) DisplayNames() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)

	return names
}

// Help returns the parameter's help text, which may be empty.
func (p *ParameterDescriptor) Help() string {
	return p.help
}

// IsList reports whether the parameter accepts multiple values.
func (p *ParameterDescriptor) IsList() bool {
	return p.list
}

// CommandDescriptor is the immutable help-time view of a Command together
// with its visible options and parameters.
type CommandDescriptor struct {
	name       string
	help       string
	options    []*OptionDescriptor
	parameters []*ParameterDescriptor
}

// Name returns the command name.
func (c *CommandDescriptor) Name() string {
	return c.name
}

// Help returns the command's help text, which may be empty.
func (c *CommandDescriptor) Help() string {
	return c.help
}

// Options returns the command's visible options in declaration order.
func (c *CommandDescriptor) Options() []*OptionDescriptor {
	return c.options
}

// Parameters returns the command's visible parameters in declaration order.
func (c *CommandDescriptor) Parameters() []*ParameterDescriptor {
	return c.parameters
}

// operation is the slice of a snapshot a command-detail page describes:
// either a single command or the application root.
type operation interface {
	Options() []*OptionDescriptor
	Parameters() []*ParameterDescriptor
}
