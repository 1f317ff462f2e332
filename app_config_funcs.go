package helptext

// NewApp creates an App with the given application name. The returned App can
// be customized through variadic ConfigureAppFunc functions.
func NewApp(name string, configs ...ConfigureAppFunc) *App {
	app := &App{Name: name}
	for _, config := range configs {
		config(app)
	}

	return app
}

// Set configures the App instance with the provided ConfigureAppFunc(s).
func (a *App) Set(configs ...ConfigureAppFunc) {
	for _, config := range configs {
		config(a)
	}
}

// WithCommands appends commands to the application, preserving declaration order.
func WithCommands(commands ...*Command) ConfigureAppFunc {
	return func(app *App) {
		app.Commands = append(app.Commands, commands...)
	}
}

// WithAppOptions appends root-level options, i.e. options accepted when no
// command is given.
func WithAppOptions(options ...*Option) ConfigureAppFunc {
	return func(app *App) {
		app.Options = append(app.Options, options...)
	}
}

// WithAppParameters appends root-level positional parameters.
func WithAppParameters(parameters ...*Parameter) ConfigureAppFunc {
	return func(app *App) {
		app.Parameters = append(app.Parameters, parameters...)
	}
}
