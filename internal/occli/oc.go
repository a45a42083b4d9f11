// Package occli drives the ClusterVersion read-modify-write through the oc
// binary, relying on whatever login context the invoking environment
// provides.
package occli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Runner executes an external command with the given stdin and returns its
// stdout. Injectable for tests.
type Runner func(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error)

// Client shells out to oc for cluster access.
type Client struct {
	run Runner
}

// NewClient returns a Client backed by the real oc binary.
func NewClient() *Client {
	return &Client{run: runCommand}
}

// NewClientWithRunner returns a Client that executes commands through run.
func NewClientWithRunner(run Runner) *Client {
	return &Client{run: run}
}

// Fetch runs `oc get clusterversion/version -o json` and decodes the output.
func (c *Client) Fetch(ctx context.Context) (*unstructured.Unstructured, error) {
	out, err := c.run(ctx, nil, "oc", "get", "clusterversion/version", "-o", "json")
	if err != nil {
		return nil, fmt.Errorf("failed to get clusterversion: %w", err)
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(out, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode clusterversion JSON: %w", err)
	}
	return &unstructured.Unstructured{Object: obj}, nil
}

// Apply pipes the full document into `oc apply -f -`. This is an
// unconditional full-document apply with no concurrency guard: a concurrent
// modification between Fetch and Apply is overwritten.
func (c *Client) Apply(ctx context.Context, cv *unstructured.Unstructured) error {
	data, err := json.Marshal(cv.Object)
	if err != nil {
		return fmt.Errorf("failed to encode clusterversion JSON: %w", err)
	}

	if _, err := c.run(ctx, bytes.NewReader(data), "oc", "apply", "-f", "-"); err != nil {
		return fmt.Errorf("failed to apply clusterversion: %w", err)
	}
	return nil
}

func runCommand(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error) {
	// #nosec G204 -- argv is fixed by the callers above
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%v: %s", err, stderr.String())
	}
	return stdout.Bytes(), nil
}
