package k8s

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	dynfake "k8s.io/client-go/dynamic/fake"

	"github.com/imamik/cvoctl/internal/clusterversion"
)

func clusterVersionObject() *unstructured.Unstructured {
	return &unstructured.Unstructured{
		Object: map[string]interface{}{
			"apiVersion": "config.openshift.io/v1",
			"kind":       "ClusterVersion",
			"metadata": map[string]interface{}{
				"name": "version",
			},
			"spec": map[string]interface{}{
				"channel": "stable-4.20",
			},
		},
	}
}

func newFakeClient(objects ...runtime.Object) *Client {
	scheme := runtime.NewScheme()
	return &Client{Dynamic: dynfake.NewSimpleDynamicClient(scheme, objects...)}
}

func TestFetch(t *testing.T) {
	client := newFakeClient(clusterVersionObject())

	cv, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "version", cv.GetName())
	assert.Equal(t, "ClusterVersion", cv.GetKind())
}

func TestFetch_MissingObject(t *testing.T) {
	client := newFakeClient()

	_, err := client.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clusterversion/version")
}

func TestApply_ReplacesObject(t *testing.T) {
	client := newFakeClient(clusterVersionObject())
	ctx := context.Background()

	cv, err := client.Fetch(ctx)
	require.NoError(t, err)

	overrides, err := clusterversion.Overrides(cv)
	require.NoError(t, err)
	require.Empty(t, overrides)

	merged, changed := clusterversion.Merge(overrides, "openshift-foo", "bar")
	require.True(t, changed)
	require.NoError(t, clusterversion.SetOverrides(cv, merged))
	require.NoError(t, client.Apply(ctx, cv))

	updated, err := client.Fetch(ctx)
	require.NoError(t, err)
	got, err := clusterversion.Overrides(updated)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bar", got[0].Name)
	assert.Equal(t, "openshift-foo", got[0].Namespace)
	assert.True(t, got[0].Unmanaged)

	// Sibling spec fields survive the full-document write.
	channel, found, err := unstructured.NestedString(updated.Object, "spec", "channel")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "stable-4.20", channel)
}

func TestApply_MissingObject(t *testing.T) {
	client := newFakeClient()

	err := client.Apply(context.Background(), clusterVersionObject())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update")
}
