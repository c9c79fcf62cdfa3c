package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const releaseRepository = "s0up4200/highton"

// updateCmd replaces the running binary with the latest GitHub release
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update highton to the latest release",
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

// currentVersion parses the build version; development builds have none.
func currentVersion() (semver.Version, error) {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("cannot update a development build (version %q)", version)
	}
	return v, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := currentVersion()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checking for updates (current version %s)...\n", current)

	latest, found, err := selfupdate.DetectLatest(cmd.Context(), selfupdate.ParseSlug(releaseRepository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", releaseRepository)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(out, "✓ Already up to date (%s)\n", current)
		return nil
	}

	if dryRun {
		fmt.Fprintf(out, "[dry-run] would update %s -> %s\n", current, latest.Version())
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(cmd.Context(), latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "✓ Updated to %s\n", latest.Version())
	return nil
}
