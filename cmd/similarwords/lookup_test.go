package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLookupCommand(t *testing.T) {
	cmd := newLookupCommand()

	assert.Equal(t, "lookup", cmd.Use)
	assert.True(t, cmd.HasSubCommands())

	// Verify the save flag is registered for every subcommand
	saveFlag := cmd.PersistentFlags().Lookup("save")
	assert.NotNil(t, saveFlag)

	subCommands := map[string]bool{}
	for _, subCommand := range cmd.Commands() {
		subCommands[subCommand.Use] = true
	}
	require.True(t, subCommands["similar"])
	require.True(t, subCommands["synonyms"])

	for _, subCommand := range cmd.Commands() {
		switch subCommand.Use {
		case "similar":
			assert.NotNil(t, subCommand.Flags().Lookup("threshold"))
		case "synonyms":
			assert.NotNil(t, subCommand.Flags().Lookup("no-translate"))
		}
	}
}
