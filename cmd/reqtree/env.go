package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackcoderx/reqtree/pkg/core"
	"github.com/blackcoderx/reqtree/pkg/storage"
)

var envSet []string

func init() {
	envCmd.Flags().StringArrayVar(&envSet, "set", nil, "set a variable (KEY=VALUE), repeatable")
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env [name]",
	Short: "List environments, or show and edit the variables of one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		dir := core.EnvironmentsDir(a.fs, a.base)
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			if len(envSet) > 0 {
				return fmt.Errorf("--set needs an environment name")
			}
			names, err := storage.ListEnvironments(a.fs, dir)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		name := args[0]
		path := storage.EnvironmentPath(a.fs, dir, name)
		env, err := storage.ReadEnvironment(a.fs, path)
		if err != nil {
			if len(envSet) == 0 {
				return fmt.Errorf("failed to load environment '%s': %w", name, err)
			}
			env = map[string]string{}
		}

		if len(envSet) > 0 {
			for _, pair := range envSet {
				key, value, ok := strings.Cut(pair, "=")
				if !ok || strings.TrimSpace(key) == "" {
					return fmt.Errorf("invalid variable %q, expected KEY=VALUE", pair)
				}
				env[strings.TrimSpace(key)] = value
			}
			if err := storage.SaveEnvironment(a.fs, env, path); err != nil {
				return fmt.Errorf("failed to save environment '%s': %w", name, err)
			}
			a.logger.Info("saved environment %s", name)
		}

		keys := make([]string, 0, len(env))
		for key := range env {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(out, "%s=%s\n", key, env[key])
		}
		return nil
	},
}
