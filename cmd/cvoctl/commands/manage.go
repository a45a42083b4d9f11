package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/cvoctl/cmd/cvoctl/handlers"
)

// Manage returns the command that hands a Deployment back to the
// cluster-version operator.
func Manage() *cobra.Command {
	var kubeconfigPath string
	var useOC bool

	cmd := &cobra.Command{
		Use:   "manage NAMESPACE NAME",
		Short: "Return a Deployment to cluster-version operator management",
		Long: `Clear the unmanaged flag on the ClusterVersion override for the named
Deployment so the cluster-version operator resumes reconciling it.

The override entry itself is kept. Nothing is written when no override for
the Deployment is currently unmanaged.

Examples:
  # Hand the Deployment back to the CVO
  cvoctl manage openshift-foo bar`,
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
			return handlers.Manage(cmd.Context(), client, namespace, name)
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to the kubeconfig file (default: $KUBECONFIG, then ~/.kube/config)")
	cmd.Flags().BoolVar(&useOC, "oc", false, "Use the oc binary instead of direct API access")

	return cmd
}
