package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackcoderx/reqtree/pkg/workspace"
)

var (
	workspacesClear  bool
	workspacesRename string
)

func init() {
	workspacesCmd.Flags().BoolVar(&workspacesClear, "clear", false, "forget all recently opened workspaces")
	workspacesCmd.Flags().StringVar(&workspacesRename, "rename", "", "rename the current workspace")
	rootCmd.AddCommand(workspacesCmd)
}

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List recently opened workspaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		if workspacesClear {
			if err := a.history.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "workspace history cleared")
			return nil
		}

		if workspacesRename != "" {
			a.ws.Metadata().SetName(workspacesRename)
			entry := workspace.Entry{Name: workspacesRename, Path: a.ws.Path()}
			if err := a.history.Record(entry, a.cfg.HistoryLimit); err != nil {
				return err
			}
		}

		history, err := a.history.History()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "current: %s (%s)\n", a.ws.Metadata().Name(), a.ws.Metadata().ID())
		for _, entry := range history {
			marker := "  "
			if entry.Path == a.ws.Path() {
				marker = "* "
			}
			fmt.Fprintf(out, "%s%-24s %s\n", marker, entry.Name, entry.Path)
		}
		return nil
	},
}
