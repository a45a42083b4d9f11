package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrides(t *testing.T) {
	cmd := Overrides()

	require.NotNil(t, cmd)
	assert.Equal(t, "overrides", cmd.Use)
	assert.Equal(t, "List ClusterVersion override entries", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestOverrides_Flags(t *testing.T) {
	cmd := Overrides()

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "table", output.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("kubeconfig"))
	assert.NotNil(t, cmd.Flags().Lookup("oc"))
}

func TestOverrides_TakesNoArgs(t *testing.T) {
	cmd := Overrides()

	assert.NoError(t, cmd.Args(cmd, []string{}))
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}
