package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"todoeditor.dev/launcher/internal/mode"
)

func TestParseDefaultsToEditor(t *testing.T) {
	selection := mode.Parse("")
	assert.Equal(t, mode.Editor, selection.Mode)
	assert.Equal(t, "editor", selection.Raw)
	assert.Equal(t, mode.Parse("editor").Plan(), selection.Plan())
}

func TestParseIsCaseInsensitive(t *testing.T) {
	for _, token := range []string{"EDITOR", "Editor", "eDiTor"} {
		selection := mode.Parse(token)
		assert.Equal(t, mode.Editor, selection.Mode, token)
		assert.Equal(t, token, selection.Raw)
	}
	assert.Equal(t, mode.Silent, mode.Parse("SILENT").Mode)
	assert.Equal(t, mode.Wallpaper, mode.Parse("Wallpaper").Mode)
	assert.Equal(t, mode.Setup, mode.Parse("seTUP").Mode)
	assert.Equal(t, mode.Config, mode.Parse("CONFIG").Mode)
	assert.Equal(t, mode.Uninstall, mode.Parse("Uninstall").Mode)
	assert.Equal(t, mode.Help, mode.Parse("HELP").Mode)
}

func TestParseUnknownTokenIsInvalid(t *testing.T) {
	selection := mode.Parse("bogus")
	assert.Equal(t, mode.Invalid, selection.Mode)
	assert.Equal(t, "bogus", selection.Raw)
}

func TestPlans(t *testing.T) {
	tests := []struct {
		token      string
		arguments  []string
		wait       mode.WaitPolicy
		banner     string
		pauseAfter bool
	}{
		{"editor", []string{"editor"}, mode.WaitForExit, "Starting Todo Editor...", false},
		{"silent", []string{"editor", "--minimized"}, mode.FireAndForget, "", false},
		{"wallpaper", []string{"wallpaper"}, mode.WaitForExit, "Starting Wallpaper Generator...", false},
		{"setup", []string{"setup"}, mode.WaitForExit, "Running Complete Setup...", false},
		{"config", []string{"config"}, mode.WaitForExit, "Showing Configuration...", true},
		{"uninstall", []string{"uninstall"}, mode.WaitForExit, "Uninstalling Todo Editor...", true},
	}
	for _, test := range tests {
		plan := mode.Parse(test.token).Plan()
		assert.True(t, plan.Spawns(), test.token)
		assert.Equal(t, test.arguments, plan.Arguments, test.token)
		assert.Equal(t, test.wait, plan.Wait, test.token)
		assert.Equal(t, test.banner, plan.Banner, test.token)
		assert.Equal(t, test.pauseAfter, plan.PauseAfter, test.token)
	}
}

func TestHelpAndInvalidPlansDoNotSpawn(t *testing.T) {
	for _, token := range []string{"help", "bogus"} {
		plan := mode.Parse(token).Plan()
		assert.False(t, plan.Spawns(), token)
		assert.True(t, plan.PauseAfter, token)
	}
}

func TestModeNames(t *testing.T) {
	for _, token := range []string{"editor", "silent", "wallpaper", "setup", "config", "uninstall", "help"} {
		assert.Equal(t, token, mode.Parse(token).Mode.String())
	}
	assert.Equal(t, "invalid", mode.Parse("bogus").Mode.String())
}
