package main

import (
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/charmbracelet/huh"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

const repoSlug = "blackcoderx/reqtree"

var updateYes bool

func init() {
	updateCmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "update without asking")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update reqtree to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if version == "dev" {
			fmt.Fprintln(out, "You are running a development build of reqtree. Update is not supported.")
			return nil
		}

		current, err := semver.ParseTolerant(version)
		if err != nil {
			return fmt.Errorf("failed to parse current version '%s': %w", version, err)
		}

		latest, found, err := selfupdate.DetectLatest(repoSlug)
		if err != nil {
			return fmt.Errorf("failed to detect latest version: %w", err)
		}
		if !found || latest.Version.LTE(current) {
			fmt.Fprintln(out, "Current version is the latest")
			return nil
		}

		if !updateYes {
			confirmed := false
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Update to %s?", latest.Version)).
				Value(&confirmed).
				Run()
			if err != nil {
				return err
			}
			if !confirmed {
				return nil
			}
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("could not locate executable path: %w", err)
		}
		if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
			return fmt.Errorf("failed to update binary: %w", err)
		}
		fmt.Fprintln(out, "Successfully updated to version", latest.Version)
		return nil
	},
}
