package clusterversion

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// ResourceName is the name of the ClusterVersion singleton every OpenShift
// cluster carries.
const ResourceName = "version"

// GroupVersionResource identifies clusterversions.config.openshift.io.
// The resource is cluster-scoped.
var GroupVersionResource = schema.GroupVersionResource{
	Group:    "config.openshift.io",
	Version:  "v1",
	Resource: "clusterversions",
}

// Client reads and writes the ClusterVersion document. Fetch returns the
// full current object; Apply replaces it wholesale. Implementations do not
// retry: the first failure aborts the operation.
//
// The document is read, modified and written back without any guard against
// concurrent modification beyond what the individual implementation happens
// to provide.
type Client interface {
	Fetch(ctx context.Context) (*unstructured.Unstructured, error)
	Apply(ctx context.Context, cv *unstructured.Unstructured) error
}

// Overrides extracts spec.overrides from a ClusterVersion document. A
// missing spec or overrides field reads as an empty list.
func Overrides(cv *unstructured.Unstructured) ([]Override, error) {
	entries, found, err := unstructured.NestedSlice(cv.Object, "spec", "overrides")
	if err != nil {
		return nil, fmt.Errorf("failed to read spec.overrides: %w", err)
	}
	if !found {
		return nil, nil
	}

	overrides := make([]Override, 0, len(entries))
	for i, entry := range entries {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("spec.overrides[%d] is not an object", i)
		}
		var override Override
		if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj, &override); err != nil {
			return nil, fmt.Errorf("failed to decode spec.overrides[%d]: %w", i, err)
		}
		overrides = append(overrides, override)
	}

	return overrides, nil
}

// SetOverrides writes the override list back into the document, creating the
// spec.overrides path when absent. Fields of the document outside
// spec.overrides are left untouched.
func SetOverrides(cv *unstructured.Unstructured, overrides []Override) error {
	entries := make([]interface{}, 0, len(overrides))
	for i := range overrides {
		obj, err := runtime.DefaultUnstructuredConverter.ToUnstructured(&overrides[i])
		if err != nil {
			return fmt.Errorf("failed to encode override %s/%s: %w",
				overrides[i].Namespace, overrides[i].Name, err)
		}
		entries = append(entries, obj)
	}

	if err := unstructured.SetNestedSlice(cv.Object, entries, "spec", "overrides"); err != nil {
		return fmt.Errorf("failed to set spec.overrides: %w", err)
	}
	return nil
}
