package core

import (
	"fmt"

	"github.com/blackcoderx/reqtree/pkg/fsys"
)

const ConfigFolderName = ".reqtree"

const defaultConfig = `# reqtree configuration
# Workspace directory holding workspace.json and the request tree
workspace: .
# Request tree directory, relative to the workspace
requests_dir: http
# Persist requests after every edit
autosave: false
# Print scan and repair diagnostics
verbose: false
# Recently opened workspaces
history_limit: 10
history_file: .reqtree/history.yaml
`

const defaultEnvironment = `# Development environment
# Add your variables here, e.g.:
# BASE_URL: http://localhost:3000
# API_TOKEN: your-dev-token
`

// InitializeConfigFolder creates the config folder under base with default
// files when it does not exist yet. It reports whether anything was created.
func InitializeConfigFolder(fs fsys.FileSystem, base string) (bool, error) {
	dir := fs.Join(base, ConfigFolderName)

	ok, err := fs.Exists(dir)
	if err != nil {
		return false, err
	}

	created := false
	if !ok {
		if err := fs.Mkdir(dir, true); err != nil {
			return false, fmt.Errorf("failed to create %s folder: %w", ConfigFolderName, err)
		}

		if err := fs.WriteTextFile(fs.Join(dir, "config.yaml"), defaultConfig); err != nil {
			return false, fmt.Errorf("failed to write config file: %w", err)
		}

		if err := fs.WriteTextFile(fs.Join(dir, "environments", "dev.yaml"), defaultEnvironment); err != nil {
			return false, fmt.Errorf("failed to write dev environment: %w", err)
		}
		created = true
	}

	// Older folders may predate the environments directory
	if err := fs.Mkdir(EnvironmentsDir(fs, base), true); err != nil {
		return created, fmt.Errorf("failed to create environments folder: %w", err)
	}

	return created, nil
}

// EnvironmentsDir returns the environments directory below base.
func EnvironmentsDir(fs fsys.FileSystem, base string) string {
	return fs.Join(base, ConfigFolderName, "environments")
}
