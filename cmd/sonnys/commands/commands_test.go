package commands_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/washmetrics/sonnys-go/cmd/sonnys/commands"
)

func findSubcommand(root *cobra.Command, name string) *cobra.Command {
	for _, subcmd := range root.Commands() {
		if subcmd.Name() == name {
			return subcmd
		}
	}

	return nil
}

func TestNewSitesCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewSitesCommand()
	assert.Equal(t, "sites", cmd.Use)
	assert.Equal(t, []string{"site"}, cmd.Aliases)
	assert.Equal(t, "Manage sites", cmd.Short)

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)
	assert.NotNil(t, list.RunE)
}

func TestNewCustomersCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewCustomersCommand()
	assert.Equal(t, "customers", cmd.Use)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 2)

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)
	assert.NotNil(t, list.Flags().Lookup("start"))
	assert.NotNil(t, list.Flags().Lookup("end"))

	get := findSubcommand(cmd, "get")
	require.NotNil(t, get)
	assert.NotNil(t, get.Args)
}

func TestNewTransactionsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewTransactionsCommand()
	assert.Equal(t, "transactions", cmd.Use)
	assert.Contains(t, cmd.Aliases, "txns")

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 3)

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)
	assert.NotNil(t, list.Flags().Lookup("type"))
	assert.NotNil(t, list.Flags().Lookup("enriched"))

	export := findSubcommand(cmd, "export")
	require.NotNil(t, export)
	assert.NotNil(t, export.Flags().Lookup("start"))
	assert.NotNil(t, export.Flags().Lookup("end"))
}

func TestNewStatsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewStatsCommand()
	assert.Equal(t, "stats", cmd.Use)

	commandNames := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "report")
	assert.Contains(t, commandNames, "washes")
	assert.Contains(t, commandNames, "sales")
	assert.Contains(t, commandNames, "conversion")
	assert.Contains(t, commandNames, "membership")
}

func TestNewAuthCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewAuthCommand()
	assert.Equal(t, "auth", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("id"))
	assert.NotNil(t, cmd.Flags().Lookup("key"))
	assert.NotNil(t, cmd.Flags().Lookup("site"))
}

func TestNewVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVersionCommand("1.2.3", "abc123", "2026-08-30")
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}
