// Package k8s provides direct API access to the ClusterVersion resource.
package k8s

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/imamik/cvoctl/internal/clusterversion"
)

// Client reads and writes the ClusterVersion through the dynamic client.
type Client struct {
	Dynamic dynamic.Interface
}

// NewClient creates a client from a kubeconfig file. An empty path falls
// back to the standard loading rules ($KUBECONFIG, then ~/.kube/config).
func NewClient(kubeconfigPath string) (*Client, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfigPath != "" {
		loadingRules.ExplicitPath = kubeconfigPath
	}

	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules, &clientcmd.ConfigOverrides{}).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}

	return &Client{Dynamic: dynamicClient}, nil
}

// Fetch returns the current ClusterVersion object.
func (c *Client) Fetch(ctx context.Context) (*unstructured.Unstructured, error) {
	cv, err := c.Dynamic.Resource(clusterversion.GroupVersionResource).
		Get(ctx, clusterversion.ResourceName, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get clusterversion/%s: %w", clusterversion.ResourceName, err)
	}
	return cv, nil
}

// Apply replaces the ClusterVersion with the given object. The object keeps
// the resourceVersion it was fetched with, so a concurrent modification
// surfaces as a conflict error; there is no retry.
func (c *Client) Apply(ctx context.Context, cv *unstructured.Unstructured) error {
	_, err := c.Dynamic.Resource(clusterversion.GroupVersionResource).
		Update(ctx, cv, metav1.UpdateOptions{})
	if err != nil {
		return fmt.Errorf("failed to update clusterversion/%s: %w", clusterversion.ResourceName, err)
	}
	return nil
}
