// Package clusterversion models the override list of the ClusterVersion
// resource and the merge logic for taking workloads out of cluster-version
// operator management.
package clusterversion

import (
	appsv1 "k8s.io/api/apps/v1"
)

// DeploymentKind is the kind recorded on overrides this tool appends.
const DeploymentKind = "Deployment"

// DeploymentGroup is the group recorded on overrides this tool appends.
// The cluster-version operator stores the full "apps/v1" group/version here.
var DeploymentGroup = appsv1.SchemeGroupVersion.String()

// Override is one entry of the ClusterVersion spec.overrides list, in the
// config.openshift.io/v1 ComponentOverride wire form.
type Override struct {
	Kind      string `json:"kind"`
	Group     string `json:"group"`
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Unmanaged bool   `json:"unmanaged"`
}

// Merge marks the Deployment identified by namespace and name as unmanaged.
//
// The first entry matching both name and namespace exactly is flipped in
// place; when none matches, a new Deployment entry is appended. Duplicate
// entries past the first match are left untouched. The returned bool reports
// whether the list changed, so callers can skip the write when it did not.
func Merge(overrides []Override, namespace, name string) ([]Override, bool) {
	for i := range overrides {
		if overrides[i].Name != name || overrides[i].Namespace != namespace {
			continue
		}
		if overrides[i].Unmanaged {
			return overrides, false
		}
		overrides[i].Unmanaged = true
		return overrides, true
	}

	return append(overrides, Override{
		Kind:      DeploymentKind,
		Group:     DeploymentGroup,
		Namespace: namespace,
		Name:      name,
		Unmanaged: true,
	}), true
}

// Release is the inverse of Merge: it clears the unmanaged flag on the first
// entry matching namespace and name. Entries are never appended or removed;
// a missing or already-managed entry is a no-op.
func Release(overrides []Override, namespace, name string) ([]Override, bool) {
	for i := range overrides {
		if overrides[i].Name != name || overrides[i].Namespace != namespace {
			continue
		}
		if !overrides[i].Unmanaged {
			return overrides, false
		}
		overrides[i].Unmanaged = false
		return overrides, true
	}

	return overrides, false
}
