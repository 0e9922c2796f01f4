// Package main is the blogctl command. It loads blog fixture files into an
// in-memory store, validating every record against the domain model, and
// reports on the result. Dependencies are wired with samber/do v2.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultProfile = "local"

// errRejected marks a run whose fixture contained rejected records. The
// rejections themselves have already been printed.
var errRejected = errors.New("fixture has rejected records")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	profile   string
	configDir string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "blogctl",
		Short:         "Validate and report on blog fixture data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}
	cmd.PersistentFlags().StringVar(&opts.profile, "profile", profile, "config profile (defaults to $APP_PROFILE or local)")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and the profile files")

	cmd.AddCommand(
		newValidateCmd(opts),
		newReportCmd(opts),
		newShowCmd(opts),
	)
	return cmd
}
