package helptext

// indentUnit is the base indentation step, in columns, used by the tabular
// part of a help page. Row headers are indented by one unit and row text
// starts two units past the widest header.
const indentUnit = 4

// usagePrefix precedes the application name on the usage line.
const usagePrefix = "Usage: "

// ConfigureAppFunc is used when defining an App
type ConfigureAppFunc func(app *App)

// ConfigureCommandFunc is used when defining a Command
type ConfigureCommandFunc func(command *Command)

// ConfigureOptionFunc is used when defining an Option
type ConfigureOptionFunc func(option *Option)

// ConfigureParameterFunc is used when defining a Parameter
type ConfigureParameterFunc func(parameter *Parameter)

// Option describes a named command-line switch. Name is the long form
// (without the leading dashes), Short the optional one-letter alternative.
// A Flag option takes no value; for the others ValueRequired distinguishes
// "--opt <arg>" from "--opt [arg]" in rendered output.
type Option struct {
	Name          string
	Short         string
	Help          string
	Flag          bool
	ValueRequired bool
	List          bool
	Hidden        bool
}

// Parameter describes a positional argument
type Parameter struct {
	Name   string
	Help   string
	List   bool
	Hidden bool
}

// Command defines a sub-command of an App. Name must be non-empty and unique
// within the App.
type Command struct {
	Name       string
	Help       string
	Hidden     bool
	Options    []*Option
	Parameters []*Parameter
}

// App is the root of an argument-syntax description: the application name,
// its commands, and any options/parameters accepted at the root level.
// An App describes syntax only - it performs no parsing and no validation.
type App struct {
	Name       string
	Commands   []*Command
	Options    []*Option
	Parameters []*Parameter
}
