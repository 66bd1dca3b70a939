package storage

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blackcoderx/reqtree/pkg/fsys"
)

// SaveRequest saves a request to a YAML file
func SaveRequest(fs fsys.FileSystem, req Request, filePath string) error {
	return writeYAML(fs, req, filePath)
}

// SaveCollection saves a collection to a YAML file
func SaveCollection(fs fsys.FileSystem, col Collection, filePath string) error {
	return writeYAML(fs, col, filePath)
}

func writeYAML(fs fsys.FileSystem, v interface{}, filePath string) error {
	if !isYAML(filePath) {
		filePath = filePath + ".yaml"
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", fs.Basename(filePath), err)
	}

	if err := fs.WriteTextFile(filePath, string(data)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// LoadRequest loads a request from a YAML file
func LoadRequest(fs fsys.FileSystem, filePath string) (*Request, error) {
	text, err := fs.ReadTextFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var req Request
	if err := yaml.Unmarshal([]byte(text), &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if req.Name == "" {
		name := fs.Basename(filePath)
		req.Name = strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
	}

	return &req, nil
}

// ListRequests lists the saved request files below dir, relative to dir and
// sorted. A missing directory has no requests.
func ListRequests(fs fsys.FileSystem, dir string) ([]string, error) {
	ok, err := fs.Exists(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}

	files := []string{}
	if err := walkYAML(fs, dir, "", &files); err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func walkYAML(fs fsys.FileSystem, dir, rel string, files *[]string) error {
	entries, err := fs.ReadDir(fs.Join(dir, rel))
	if err != nil {
		return err
	}
	for _, entry := range entries {
		relPath := entry.Name
		if rel != "" {
			relPath = fs.Join(rel, entry.Name)
		}
		if entry.IsDirectory {
			if err := walkYAML(fs, dir, relPath, files); err != nil {
				return err
			}
			continue
		}
		if isYAML(entry.Name) {
			*files = append(*files, relPath)
		}
	}
	return nil
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}
