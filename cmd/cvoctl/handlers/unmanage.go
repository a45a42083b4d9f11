package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/cvoctl/internal/clusterversion"
)

// Unmanage marks the Deployment namespace/name as unmanaged in the
// ClusterVersion override list. The document is written back only when the
// list actually changed; when the Deployment is already unmanaged no write
// happens.
func Unmanage(ctx context.Context, client clusterversion.Client, namespace, name string) error {
	cv, err := client.Fetch(ctx)
	if err != nil {
		return err
	}

	overrides, err := clusterversion.Overrides(cv)
	if err != nil {
		return err
	}

	merged, changed := clusterversion.Merge(overrides, namespace, name)
	if !changed {
		fmt.Printf("deployment %s/%s is already unmanaged\n", namespace, name)
		return nil
	}

	if err := clusterversion.SetOverrides(cv, merged); err != nil {
		return err
	}
	if err := client.Apply(ctx, cv); err != nil {
		return err
	}

	fmt.Printf("deployment %s/%s marked unmanaged\n", namespace, name)
	return nil
}
