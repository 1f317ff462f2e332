package helptext

// NewOption creates an Option with the given long name. The returned Option
// can be customized through variadic ConfigureOptionFunc functions.
func NewOption(name string, configs ...ConfigureOptionFunc) *Option {
	option := &Option{Name: name}
	for _, config := range configs {
		config(option)
	}

	return option
}

// Set configures the Option instance with the provided ConfigureOptionFunc(s).
func (o *Option) Set(configs ...ConfigureOptionFunc) {
	for _, config := range configs {
		config(o)
	}
}

// WithShort sets the short (one-letter) form of an option. The short form is
// shown next to the long form in the option table, never on the usage line.
func WithShort(short string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Short = short
	}
}

// WithHelp sets the help text shown in the option table.
func WithHelp(help string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Help = help
	}
}

// AsFlag marks the option as a boolean switch which takes no value.
func AsFlag() ConfigureOptionFunc {
	return func(option *Option) {
		option.Flag = true
	}
}

// SetValueRequired determines whether the option's value placeholder renders
// as "<arg>" (required) or "[arg]" (optional). Ignored for flags.
func SetValueRequired(required bool) ConfigureOptionFunc {
	return func(option *Option) {
		option.ValueRequired = required
	}
}

// SetList marks the option as repeatable. Repeatable arguments render with a
// trailing ellipsis.
func SetList(list bool) ConfigureOptionFunc {
	return func(option *Option) {
		option.List = list
	}
}

// SetHidden excludes the option from all rendered help output.
func SetHidden(hidden bool) ConfigureOptionFunc {
	return func(option *Option) {
		option.Hidden = hidden
	}
}

// NewParameter creates a Parameter with the given display name. The returned
// Parameter can be customized through variadic ConfigureParameterFunc functions.
func NewParameter(name string, configs ...ConfigureParameterFunc) *Parameter {
	parameter := &Parameter{Name: name}
	for _, config := range configs {
		config(parameter)
	}

	return parameter
}

// Set configures the Parameter instance with the provided ConfigureParameterFunc(s).
func (p *Parameter) Set(configs ...ConfigureParameterFunc) {
	for _, config := range configs {
		config(p)
	}
}

// WithParameterHelp sets the help text shown in the parameter table.
func WithParameterHelp(help string) ConfigureParameterFunc {
	return func(parameter *Parameter) {
		parameter.Help = help
	}
}

// SetParameterList marks the parameter as accepting multiple values.
func SetParameterList(list bool) ConfigureParameterFunc {
	return func(parameter *Parameter) {
		parameter.List = list
	}
}

// SetParameterHidden excludes the parameter from all rendered help output.
func SetParameterHidden(hidden bool) ConfigureParameterFunc {
	return func(parameter *Parameter) {
		parameter.Hidden = hidden
	}
}
