package helptext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandListApp() *App {
	return NewApp("tool",
		WithCommands(
			NewCommand("build", WithCommandHelp("Builds the project")),
			NewCommand("test", WithCommandHelp("Runs tests")),
		),
	)
}

func TestRenderCommandList(t *testing.T) {
	snapshot := NewSnapshot(commandListApp(), "")

	want := "Usage: tool <command> [<args>]\n" +
		"\n" +
		"    build    Builds the project\n" +
		"    test     Runs tests\n" +
		"\n"
	assert.Equal(t, want, snapshot.Render(80))
}

func TestRenderCommandDetailNarrow(t *testing.T) {
	app := NewApp("app",
		WithCommands(
			NewCommand("run",
				WithOptions(
					NewOption("count", WithShort("c"),
						WithHelp("Number of times to run"),
						SetValueRequired(true)),
				),
				WithParameters(
					NewParameter("files",
						WithParameterHelp("Files to process"),
						SetParameterList(true)),
				),
			),
		),
	)
	snapshot := NewSnapshot(app, "run")

	got := snapshot.Render(20)
	want := "Usage: app run\n" +
		"           [--count <arg>]\n" +
		"           [--]\n" +
		"           files...\n" +
		"\n" +
		"    --count, -c <arg>    Number of times to\n" +
		"                         run\n" +
		"    files...             Files to process\n" +
		"\n"
	assert.Equal(t, want, got)

	// continuation lines of the syntax block re-indent to the same column
	lines := strings.Split(got, "\n")
	for _, line := range lines[1:4] {
		assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", len("Usage: app "))))
	}
}

func TestRenderNoRows(t *testing.T) {
	snapshot := NewSnapshot(NewApp("solo"), "")

	assert.Equal(t, "Usage: solo\n", snapshot.Render(80))
	assert.NotContains(t, snapshot.Render(80), "\n\n")
}

func TestRenderRootDetail(t *testing.T) {
	app := NewApp("grep",
		WithAppOptions(
			NewOption("invert", WithShort("v"), WithHelp("Select non-matching lines"), AsFlag()),
		),
		WithAppParameters(
			NewParameter("pattern", WithParameterHelp("Pattern to search for")),
			NewParameter("file", SetParameterList(true)),
		),
	)
	snapshot := NewSnapshot(app, "")

	want := "Usage: grep [--invert] [--] pattern file...\n" +
		"\n" +
		"    --invert, -v    Select non-matching lines\n" +
		"    pattern         Pattern to search for\n" +
		"    file...\n" +
		"\n"
	assert.Equal(t, want, snapshot.Render(80))
}

func TestRenderUnknownActiveCommandFallsBackToRoot(t *testing.T) {
	app := commandListApp()
	app.Set(WithAppOptions(NewOption("verbose", AsFlag())))
	snapshot := NewSnapshot(app, "deploy")

	got := snapshot.Render(80)
	assert.Contains(t, got, "Usage: tool [--verbose]")
	assert.NotContains(t, got, "<command>", "an unmatched command must not degrade to the command list")
	assert.NotContains(t, got, "build")
}

func TestRenderActiveCommandWithoutCommands(t *testing.T) {
	app := NewApp("single", WithAppParameters(NewParameter("path")))
	snapshot := NewSnapshot(app, "")

	assert.Equal(t, "Usage: single path\n\n    path\n\n", snapshot.Render(80))
}

func TestRenderEmptyHelpKeepsRow(t *testing.T) {
	app := NewApp("tool",
		WithCommands(
			NewCommand("alpha", WithCommandHelp("Does things")),
			NewCommand("beta"),
		),
	)
	snapshot := NewSnapshot(app, "")

	got := snapshot.Render(80)
	assert.Contains(t, got, "\n    beta\n", "a row with empty help is a bare header line, no trailing padding")
}

func TestRenderRowAlignment(t *testing.T) {
	app := NewApp("tool",
		WithCommands(
			NewCommand("a", WithCommandHelp("first")),
			NewCommand("longer-name", WithCommandHelp("second")),
		),
	)
	snapshot := NewSnapshot(app, "")

	// help starts at the widest header plus two indent units
	helpStart := len("longer-name") + 2*indentUnit
	lines := strings.Split(snapshot.Render(80), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "first", lines[2][helpStart:])
	assert.Equal(t, "second", lines[3][helpStart:])
}

func TestRenderHeaderWiderThanMaxWidth(t *testing.T) {
	app := NewApp("t",
		WithCommands(
			NewCommand("extraordinarily-long-command-name", WithCommandHelp("short help text")),
		),
	)
	snapshot := NewSnapshot(app, "")

	// header column exceeds the width; help wraps at the full width instead
	// of a negative one, losing alignment but never failing
	got := snapshot.Render(10)
	assert.Contains(t, got, "extraordinarily-long-command-name")
	assert.Contains(t, got, "short help")
	for _, word := range []string{"short", "help", "text"} {
		assert.Contains(t, got, word)
	}
}

func TestRenderDeterministic(t *testing.T) {
	snapshot := NewSnapshot(commandListApp(), "")

	assert.Equal(t, snapshot.Render(80), snapshot.Render(80))

	again := NewSnapshot(commandListApp(), "")
	assert.Equal(t, snapshot.Render(80), again.Render(80))
}

func TestPrintWritesRenderedPage(t *testing.T) {
	snapshot := NewSnapshot(commandListApp(), "")

	var buf bytes.Buffer
	snapshot.Print(&buf, 80)
	assert.Equal(t, snapshot.Render(80), buf.String())
}

func TestSnapshotFiltersHidden(t *testing.T) {
	app := NewApp("tool",
		WithCommands(
			NewCommand("visible", WithCommandHelp("shown")),
			NewCommand("secret", WithCommandHelp("never shown"), SetCommandHidden(true)),
		),
		WithAppOptions(
			NewOption("loud", AsFlag()),
			NewOption("debug", AsFlag(), SetHidden(true)),
		),
		WithAppParameters(
			NewParameter("input"),
			NewParameter("scratch", SetParameterHidden(true)),
		),
	)
	snapshot := NewSnapshot(app, "")

	require.Len(t, snapshot.Commands(), 1)
	assert.Equal(t, "visible", snapshot.Commands()[0].Name())
	_, found := snapshot.Command("secret")
	assert.False(t, found)

	require.Len(t, snapshot.Options(), 1)
	assert.Equal(t, "--loud", snapshot.Options()[0].DisplayName())
	require.Len(t, snapshot.Parameters(), 1)
	assert.Equal(t, "input", snapshot.Parameters()[0].DisplayName())
}

func TestSnapshotPreservesDeclarationOrder(t *testing.T) {
	app := NewApp("tool",
		WithCommands(
			NewCommand("zeta"),
			NewCommand("alpha"),
			NewCommand("midway"),
		),
	)
	snapshot := NewSnapshot(app, "")

	var names []string
	for _, command := range snapshot.Commands() {
		names = append(names, command.Name())
	}
	assert.Equal(t, []string{"zeta", "alpha", "midway"}, names)
}

func TestDescriptorDisplayNames(t *testing.T) {
	app := NewApp("tool",
		WithAppOptions(
			NewOption("count", WithShort("c")),
			NewOption("plain"),
		),
	)
	snapshot := NewSnapshot(app, "")

	require.Len(t, snapshot.Options(), 2)
	assert.Equal(t, []string{"--count", "-c"}, snapshot.Options()[0].DisplayNames())
	assert.Equal(t, []string{"--plain"}, snapshot.Options()[1].DisplayNames())

	// mutating the returned slice must not leak into the snapshot
	names := snapshot.Options()[0].DisplayNames()
	names[0] = "clobbered"
	assert.Equal(t, "--count", snapshot.Options()[0].DisplayName())
}
