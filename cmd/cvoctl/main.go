// Package main is the entry point for the cvoctl CLI.
//
// cvoctl edits the override list of the OpenShift ClusterVersion resource so
// individual Deployments can be taken out of (or returned to) cluster-version
// operator management. Marking a Deployment unmanaged lets it be edited
// out-of-band, for example to test a locally built operator image, without
// the cluster-version operator reconciling the edit away.
//
// Commands: unmanage, manage, overrides.
//
// For detailed usage information, run:
//
//	cvoctl --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/cvoctl/cmd/cvoctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
