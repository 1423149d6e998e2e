// rtigen assigns globally unique VLAN IDs to RTI_VLAN_REGISTER_STATIC call
// sites across a multi-module source tree and emits one generated header per
// module.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rtigen",
		Short:         "VLAN ID generator for RTI module trees",
		Long:          "rtigen scans the modules declared in a project configuration for\nRTI_VLAN_REGISTER_STATIC call sites and generates a header with globally\nunique, sequential VLAN IDs for each module.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "info", "logging level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", "console", "log output format: console, text or json")

	root.AddCommand(newGenerateCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
