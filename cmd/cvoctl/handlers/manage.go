package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/cvoctl/internal/clusterversion"
)

// Manage returns the Deployment namespace/name to cluster-version operator
// management by clearing the unmanaged flag on its override entry. The
// override entry itself is kept so a later unmanage restores the previous
// state exactly. Nothing is written when no matching entry is unmanaged.
func Manage(ctx context.Context, client clusterversion.Client, namespace, name string) error {
	cv, err := client.Fetch(ctx)
	if err != nil {
		return err
	}

	overrides, err := clusterversion.Overrides(cv)
	if err != nil {
		return err
	}

	released, changed := clusterversion.Release(overrides, namespace, name)
	if !changed {
		fmt.Printf("deployment %s/%s is not unmanaged\n", namespace, name)
		return nil
	}

	if err := clusterversion.SetOverrides(cv, released); err != nil {
		return err
	}
	if err := client.Apply(ctx, cv); err != nil {
		return err
	}

	fmt.Printf("deployment %s/%s returned to cluster-version operator management\n", namespace, name)
	return nil
}
