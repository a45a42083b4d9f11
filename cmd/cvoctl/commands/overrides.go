package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cvoctl/cmd/cvoctl/handlers"
)

// Overrides returns the command that lists the current override entries.
//
// Optional flags:
//
//	--output, -o: output format, one of table, json, yaml (default: table)
func Overrides() *cobra.Command {
	var kubeconfigPath string
	var useOC bool
	var output string

	cmd := &cobra.Command{
		Use:   "overrides",
		Short: "List ClusterVersion override entries",
		Long: `Display the spec.overrides list of the ClusterVersion resource.

Examples:
  # Show overrides as a table
  cvoctl overrides

  # Show overrides as JSON
  cvoctl overrides -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := handlers.NewClient(kubeconfigPath, useOC)
			if err != nil {
				return err
			}
			return handlers.Overrides(cmd.Context(), client, output)
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to the kubeconfig file (default: $KUBECONFIG, then ~/.kube/config)")
	cmd.Flags().BoolVar(&useOC, "oc", false, "Use the oc binary instead of direct API access")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json, or yaml")

	return cmd
}
