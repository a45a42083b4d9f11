// Package handlers implements the command execution logic for the cvoctl CLI.
//
// Handlers operate on the clusterversion.Client interface so the
// read-merge-write flow can be tested without a cluster.
package handlers

import (
	"github.com/imamik/cvoctl/internal/clusterversion"
	"github.com/imamik/cvoctl/internal/k8s"
	"github.com/imamik/cvoctl/internal/occli"
)

// NewClient selects the cluster access path: the oc binary when useOC is
// set, otherwise the direct API client built from the kubeconfig.
func NewClient(kubeconfigPath string, useOC bool) (clusterversion.Client, error) {
	if useOC {
		return occli.NewClient(), nil
	}
	return k8s.NewClient(kubeconfigPath)
}
