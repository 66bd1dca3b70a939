package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackcoderx/reqtree/pkg/rest"
	"github.com/blackcoderx/reqtree/pkg/storage"
)

var (
	importName string
	importIn   string
)

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "override the imported request or collection name")
	importCmd.Flags().StringVar(&importIn, "in", "", "folder to import into (default is the tree root)")

	rootCmd.AddCommand(importCmd, exportCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.yaml|dir>",
	Short: "Import saved requests or collections from YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		dest, err := a.resolveDir(importIn)
		if err != nil {
			return err
		}
		source := absFrom(a.base, args[0])

		files := []string{source}
		if isDir, err := isDirectory(a, source); err != nil {
			return err
		} else if isDir {
			rels, err := storage.ListRequests(a.fs, source)
			if err != nil {
				return err
			}
			files = files[:0]
			for _, rel := range rels {
				files = append(files, a.fs.Join(source, rel))
			}
		}

		imported := 0
		for _, file := range files {
			col, err := storage.LoadFile(a.fs, file)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", file, err)
			}
			if importName != "" && len(files) == 1 {
				if col.Name != "" {
					col.Name = importName
				} else if len(col.Requests) == 1 {
					col.Requests[0].Name = importName
				}
			}

			entities, err := storage.ImportCollection(a.rest(), col, dest)
			imported += len(entities)
			if err != nil {
				return err
			}
			for _, e := range entities {
				a.logger.Verbose("imported %s", a.relative(e.Path()))
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d request(s) into %s\n", imported, a.relative(dest))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <request|folder> <out.yaml>",
	Short: "Export a request or a folder to YAML",
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
		out := absFrom(a.base, args[1])

		isDir, err := isDirectory(a, path)
		if err != nil {
			return err
		}

		if !isDir {
			e, err := a.rest().Open(path)
			if err != nil {
				return fmt.Errorf("failed to open request: %w", err)
			}
			if err := storage.SaveRequest(a.fs, storage.FromEntity(e), out); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "exported 1 request to", out)
			return nil
		}

		nodes, err := a.rest().GetRequests()
		if err != nil {
			return fmt.Errorf("failed to scan requests: %w", err)
		}
		var folder *rest.FolderNode
		if path == a.rest().Root() {
			folder = &rest.FolderNode{Name: a.cfg.RequestsDir, Path: path, Children: nodes}
		} else if f, ok := rest.FindNode(nodes, path).(*rest.FolderNode); ok {
			folder = f
		} else {
			return fmt.Errorf("%s is not a folder of the request tree", args[0])
		}

		col, err := storage.ExportFolder(a.rest(), folder)
		if err != nil {
			return err
		}
		if err := storage.SaveCollection(a.fs, col, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d request(s) to %s\n", len(col.Requests), out)
		return nil
	},
}

// isDirectory reports whether path names a directory. Missing paths are not
// directories.
func isDirectory(a *app, path string) (bool, error) {
	ok, err := a.fs.Exists(path)
	if err != nil || !ok {
		return false, err
	}

	entries, err := a.fs.ReadDir(a.fs.Dirname(path))
	if err != nil {
		return false, err
	}
	name := a.fs.Basename(path)
	for _, entry := range entries {
		if entry.Name == name {
			return entry.IsDirectory, nil
		}
	}
	return false, nil
}
