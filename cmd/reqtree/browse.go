package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/blackcoderx/reqtree/pkg/core"
	"github.com/blackcoderx/reqtree/pkg/rest"
	"github.com/blackcoderx/reqtree/pkg/storage"
	"github.com/blackcoderx/reqtree/pkg/tui"
)

var (
	treeJSON bool
	showEnv  string
	showRaw  bool
)

func init() {
	treeCmd.Flags().BoolVar(&treeJSON, "json", false, "print the tree as JSON tree view elements")
	showCmd.Flags().StringVarP(&showEnv, "env", "e", "", "substitute variables from this environment")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the stored JSON record")

	rootCmd.AddCommand(treeCmd, showCmd, findCmd, pathCmd, browseCmd)
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the request tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		if treeJSON {
			elements, err := a.rest().GetAsTree()
			if err != nil {
				return fmt.Errorf("failed to scan requests: %w", err)
			}
			data, err := json.MarshalIndent(elements, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		nodes, err := a.rest().GetRequests()
		if err != nil {
			return fmt.Errorf("failed to scan requests: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTree(a.cfg.RequestsDir, nodes))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <request>",
	Short: "Show a request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		path, err := a.resolve(args[0])
		if err != nil {
			return err
		}
		e, err := a.rest().Open(path)
		if err != nil {
			return fmt.Errorf("failed to open request: %w", err)
		}
		if e == nil {
			return fmt.Errorf("%s does not exist", args[0])
		}

		rec := e.Record()
		if showEnv != "" {
			env, err := storage.LoadNamedEnvironment(a.fs, core.EnvironmentsDir(a.fs, a.base), showEnv)
			if err != nil {
				return fmt.Errorf("failed to load environment '%s': %w", showEnv, err)
			}
			rec = storage.ApplyEnvironment(rec, env)
		}

		if showRaw {
			text, err := rec.Encode()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		}

		// Render with Glamour, falling back to the raw markdown
		md := tui.RecordMarkdown(rec)
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		}
		out, err := renderer.Render(md)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "Fuzzy-find requests by path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		nodes, err := a.rest().GetRequests()
		if err != nil {
			return fmt.Errorf("failed to scan requests: %w", err)
		}

		results := rest.Search(nodes, a.rest().Root(), args[0])
		if len(results) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "no matching requests")
			return nil
		}
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", r.Request.Method, highlightMatches(r.Rel, r.Matched))
		}
		return nil
	},
}

// highlightMatches emphasizes the matched bytes of s.
func highlightMatches(s string, matched []int) string {
	if len(matched) == 0 {
		return s
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range s {
		if hit[i] {
			b.WriteString(tui.CursorStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var pathCmd = &cobra.Command{
	Use:   "path <request>",
	Short: "Copy the absolute path of a request or folder to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		path, err := a.resolve(args[0])
		if err != nil {
			return err
		}
		if err := a.requireExists(path); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		if err := clipboard.WriteAll(path); err != nil {
			a.logger.Error("failed to copy to clipboard: %v", err)
			return nil
		}
		a.logger.Info("copied to clipboard")
		return nil
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the request tree interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		return tui.Run(a.rest())
	},
}
