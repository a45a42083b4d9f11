package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/cvoctl/cmd/cvoctl/handlers"
)

// Unmanage returns the command that marks a Deployment unmanaged.
//
// Required positional arguments:
//
//	NAMESPACE: namespace of the Deployment
//	NAME: name of the Deployment
//
// Optional flags:
//
//	--kubeconfig: path to the kubeconfig file (default: standard loading rules)
//	--oc: use the oc binary instead of direct API access
func Unmanage() *cobra.Command {
	var kubeconfigPath string
	var useOC bool

	cmd := &cobra.Command{
		Use:   "unmanage NAMESPACE NAME",
		Short: "Mark a Deployment unmanaged by the cluster-version operator",
		Long: `Add or update a ClusterVersion override so the cluster-version
operator stops reconciling the named Deployment.

With the override in place the Deployment can be edited out-of-band, for
example to run a locally built operator image, without the edit being
reverted by the next reconcile.

The ClusterVersion is only written back when the override list actually
changed; running unmanage twice for the same Deployment is safe.

Examples:
  # Stop the CVO from managing the cloud controller manager operator
  cvoctl unmanage openshift-cloud-controller-manager cluster-cloud-controller-manager-operator

  # Use the oc binary and its login context instead of direct API access
  cvoctl unmanage --oc openshift-foo bar`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace, name := args[0], args[1]
			if namespace == "" || name == "" {
				return fmt.Errorf("namespace and name must not be empty")
			}

			client, err := handlers.NewClient(kubeconfigPath, useOC)
			if err != nil {
				return err
			}
			return handlers.Unmanage(cmd.Context(), client, namespace, name)
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to the kubeconfig file (default: $KUBECONFIG, then ~/.kube/config)")
	cmd.Flags().BoolVar(&useOC, "oc", false, "Use the oc binary instead of direct API access")

	return cmd
}
