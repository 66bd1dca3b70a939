package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/blackcoderx/reqtree/pkg/rest"
)

var (
	newMethod string
	newIn     string
	newURL    string
	mkdirIn   string
	renameDir bool
	rmYes     bool
)

func init() {
	newCmd.Flags().StringVarP(&newMethod, "method", "m", string(rest.GET), "HTTP method")
	newCmd.Flags().StringVar(&newIn, "in", "", "folder to create the request in (default is the tree root)")
	newCmd.Flags().StringVar(&newURL, "url", "", "request URL")
	mkdirCmd.Flags().StringVar(&mkdirIn, "in", "", "parent folder (default is the tree root)")
	renameCmd.Flags().BoolVar(&renameDir, "dir", false, "rename a folder instead of a request")
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "delete without asking")

	rootCmd.AddCommand(newCmd, mkdirCmd, cpCmd, mvCmd, renameCmd, rmCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		method, ok := rest.ParseMethod(newMethod)
		if !ok {
			return fmt.Errorf("%w: %q", rest.ErrInvalidMethod, newMethod)
		}
		base, err := a.resolveDir(newIn)
		if err != nil {
			return err
		}

		e, err := a.rest().Create(args[0], method, base)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		if newURL != "" {
			e.SetURL(newURL)
			if err := e.Save(); err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "created", a.relative(e.Path()))
		return nil
	},
}

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		base, err := a.resolveDir(mkdirIn)
		if err != nil {
			return err
		}
		// The folder itself must stay inside the tree too
		if _, err := a.resolve(a.fs.Join(base, args[0])); err != nil {
			return err
		}

		if err := a.rest().CreateFolder(args[0], base); err != nil {
			return fmt.Errorf("failed to create folder: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "created", a.relative(a.fs.Join(base, args[0])))
		return nil
	},
}

// relocateCommand builds cp and mv, which differ only in the operation.
func relocateCommand(use, short, verb string, op func(m *rest.Manager, current, target string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <request|folder> <target-folder>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			current, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			target, err := a.resolveDir(args[1])
			if err != nil {
				return err
			}
			if err := a.requireExists(current); err != nil {
				return err
			}
			if err := a.requireExists(target); err != nil {
				return err
			}

			if err := op(a.rest(), current, target); err != nil {
				return fmt.Errorf("failed to %s %s: %w", use, args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s to %s\n", verb, a.relative(current), a.relative(target))
			return nil
		},
	}
}

var cpCmd = relocateCommand("cp", "Copy a request or folder into another folder", "copied",
	func(m *rest.Manager, current, target string) error { return m.Copy(current, target) })

var mvCmd = relocateCommand("mv", "Move a request or folder into another folder", "moved",
	func(m *rest.Manager, current, target string) error { return m.Move(current, target) })

var renameCmd = &cobra.Command{
	Use:   "rename <request|folder> <new-name>",
	Short: "Rename a request (its method is kept) or a folder",
	Args:  cobra.ExactArgs(2),
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

		if err := a.rest().Rename(path, args[1], renameDir); err != nil {
			return fmt.Errorf("failed to rename %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "renamed", a.relative(path))
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <request|folder>",
	Short: "Delete a request or a folder with everything in it",
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
		if path == a.rest().Root() {
			return fmt.Errorf("refusing to delete the request tree root")
		}
		if err := a.requireExists(path); err != nil {
			return err
		}

		if !rmYes {
			confirmed := false
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s?", a.relative(path))).
				Description("Folders are deleted with everything in them.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed).
				Run()
			if err != nil {
				return err
			}
			if !confirmed {
				return nil
			}
		}

		if err := a.rest().Delete(path); err != nil {
			return fmt.Errorf("failed to delete %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "deleted", a.relative(path))
		return nil
	},
}
