package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmanage(t *testing.T) {
	cmd := Unmanage()

	require.NotNil(t, cmd)
	assert.Equal(t, "unmanage NAMESPACE NAME", cmd.Use)
	assert.Equal(t, "Mark a Deployment unmanaged by the cluster-version operator", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestUnmanage_Flags(t *testing.T) {
	cmd := Unmanage()

	assert.NotNil(t, cmd.Flags().Lookup("kubeconfig"))
	assert.NotNil(t, cmd.Flags().Lookup("oc"))
}

func TestUnmanage_RequiresTwoArgs(t *testing.T) {
	cmd := Unmanage()

	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.Error(t, cmd.Args(cmd, []string{"openshift-foo"}))
	assert.Error(t, cmd.Args(cmd, []string{"openshift-foo", "bar", "extra"}))
	assert.NoError(t, cmd.Args(cmd, []string{"openshift-foo", "bar"}))
}

func TestManage(t *testing.T) {
	cmd := Manage()

	require.NotNil(t, cmd)
	assert.Equal(t, "manage NAMESPACE NAME", cmd.Use)
	assert.Equal(t, "Return a Deployment to cluster-version operator management", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestManage_RequiresTwoArgs(t *testing.T) {
	cmd := Manage()

	assert.Error(t, cmd.Args(cmd, []string{"openshift-foo"}))
	assert.NoError(t, cmd.Args(cmd, []string{"openshift-foo", "bar"}))
}
