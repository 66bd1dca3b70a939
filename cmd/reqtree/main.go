package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackcoderx/reqtree/pkg/core"
	"github.com/blackcoderx/reqtree/pkg/fsys"
	"github.com/blackcoderx/reqtree/pkg/logging"
	"github.com/blackcoderx/reqtree/pkg/rest"
	"github.com/blackcoderx/reqtree/pkg/tui"
	"github.com/blackcoderx/reqtree/pkg/workspace"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:     "reqtree",
		Short:   "reqtree - manage HTTP request collections as plain files",
		Version: version,
		Long: `reqtree keeps HTTP request definitions as files in a directory tree.
Every request is a "{name}.{METHOD}" JSON file, every folder a directory:
version them with git, edit them with any tool, browse them here.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("verbose") {
				viper.Set("verbose", verbose)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			return tui.Run(a.rest())
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .reqtree/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print scan and repair diagnostics")
}

func initConfig() {
	// Load .env file if it exists (optional, warn if malformed)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	core.ConfigureViper(viper.GetViper(), cfgFile, cwd)
	_ = viper.ReadInConfig()
}

// app is the state shared by every command.
type app struct {
	cfg     core.Config
	fs      *fsys.Billy
	logger  logging.Logger
	base    string
	history *workspace.Store
	ws      *workspace.Workspace
}

// loadApp bootstraps the config folder and opens the configured workspace.
func loadApp() (*app, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	fs := fsys.NewOS()
	created, err := core.InitializeConfigFolder(fs, base)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s: %w", core.ConfigFolderName, err)
	}
	if created {
		fmt.Fprintf(os.Stderr, "Initialized %s folder\n", core.ConfigFolderName)
		// First run creates config.yaml after the initial read
		_ = viper.ReadInConfig()
	}

	cfg := core.LoadConfig(viper.GetViper())
	logger := logging.NewConsoleLogger(cfg.Verbose)

	a := &app{
		cfg:     cfg,
		fs:      fs,
		logger:  logger,
		base:    base,
		history: workspace.NewStore(fs, absFrom(base, cfg.HistoryFile)),
	}

	a.ws, err = workspace.Open(fs, absFrom(base, cfg.Workspace),
		workspace.WithLogger(logger),
		workspace.WithRequestsDir(cfg.RequestsDir),
		workspace.WithHistory(a.history, cfg.HistoryLimit),
		workspace.WithRestOptions(rest.WithAutoSave(cfg.AutoSave)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace: %w", err)
	}
	return a, nil
}

func (a *app) rest() *rest.Manager { return a.ws.Rest() }

// resolve maps a command line path into the request tree.
func (a *app) resolve(path string) (string, error) {
	return core.ResolveWithin(path, a.rest().Root())
}

// resolveDir is resolve with an empty value meaning the tree root.
func (a *app) resolveDir(path string) (string, error) {
	if path == "" {
		return a.rest().Root(), nil
	}
	return a.resolve(path)
}

// requireExists fails for paths the manager would silently ignore.
func (a *app) requireExists(path string) error {
	ok, err := a.fs.Exists(path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s does not exist", a.relative(path))
	}
	return nil
}

// relative renders path relative to the tree root for messages.
func (a *app) relative(path string) string {
	rel, err := filepath.Rel(a.rest().Root(), path)
	if err != nil {
		return path
	}
	return rel
}

func absFrom(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
