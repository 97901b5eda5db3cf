package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetSeedCmd_Exists verifies getSeedCmd returns
// a valid command.
func TestGetSeedCmd_Exists(t *testing.T) {
	cmd := getSeedCmd()
	require.NotNil(t, cmd, "Seed command should exist")
	assert.Equal(t, "seed", cmd.Use,
		"Command name should be seed")
}

// TestGetSeedCmd_Flags verifies flags exist with correct
// defaults.
func TestGetSeedCmd_Flags(t *testing.T) {
	cmd := getSeedCmd()

	fileFlag := cmd.Flags().Lookup("file")
	require.NotNil(t, fileFlag, "--file flag should exist")
	assert.Equal(t, "f", fileFlag.Shorthand,
		"Short form should be -f")

	truncateFlag := cmd.Flags().Lookup("truncate")
	require.NotNil(t, truncateFlag,
		"--truncate flag should exist")
	assert.Equal(t, "false", truncateFlag.DefValue,
		"Default should be false")
}

// TestGetStatusCmd_Exists verifies getStatusCmd returns
// a valid command.
func TestGetStatusCmd_Exists(t *testing.T) {
	cmd := getStatusCmd()
	require.NotNil(t, cmd, "Status command should exist")
	assert.Equal(t, "status", cmd.Use,
		"Command name should be status")
	assert.Contains(t, cmd.Long, "schema version",
		"Long description should mention schema version")
}
