package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/imamik/cvoctl/internal/clusterversion"
)

// Overrides prints the current ClusterVersion override list in the requested
// format: table (default), json, or yaml.
func Overrides(ctx context.Context, client clusterversion.Client, output string) error {
	switch output {
	case "", "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q (expected table, json, or yaml)", output)
	}

	cv, err := client.Fetch(ctx)
	if err != nil {
		return err
	}

	overrides, err := clusterversion.Overrides(cv)
	if err != nil {
		return err
	}
	if overrides == nil {
		// An absent list renders as [] rather than null.
		overrides = []clusterversion.Override{}
	}

	switch output {
	case "json":
		return printOverridesJSON(overrides)
	case "yaml":
		return printOverridesYAML(overrides)
	default:
		return printOverridesTable(overrides)
	}
}

func printOverridesJSON(overrides []clusterversion.Override) error {
	data, err := json.MarshalIndent(overrides, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal overrides: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printOverridesYAML(overrides []clusterversion.Override) error {
	data, err := yaml.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("failed to marshal overrides: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func printOverridesTable(overrides []clusterversion.Override) error {
	if len(overrides) == 0 {
		fmt.Println("No overrides set")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAMESPACE\tNAME\tGROUP\tKIND\tUNMANAGED")
	for _, o := range overrides {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", o.Namespace, o.Name, o.Group, o.Kind, o.Unmanaged)
	}
	return w.Flush()
}
