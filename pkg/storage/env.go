package storage

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blackcoderx/reqtree/pkg/fsys"
	"github.com/blackcoderx/reqtree/pkg/rest"
)

// varPattern matches {{VAR_NAME}} or {{env:VAR_NAME}}
var varPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// LoadEnvironment loads environment variables from a YAML file
func LoadEnvironment(fs fsys.FileSystem, filePath string) (map[string]string, error) {
	env, err := ReadEnvironment(fs, filePath)
	if err != nil {
		return nil, err
	}

	// {{env:VAR}} references resolve against the process environment at load time
	for key, value := range env {
		env[key] = resolveEnvRefs(value)
	}

	return env, nil
}

// ReadEnvironment is LoadEnvironment without resolving {{env:VAR}}
// references, for editing the file in place.
func ReadEnvironment(fs fsys.FileSystem, filePath string) (map[string]string, error) {
	text, err := fs.ReadTextFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file: %w", err)
	}

	var env map[string]string
	if err := yaml.Unmarshal([]byte(text), &env); err != nil {
		return nil, fmt.Errorf("failed to parse environment YAML: %w", err)
	}
	if env == nil {
		env = map[string]string{}
	}
	return env, nil
}

// EnvironmentPath returns dir/{name}.yaml, or dir/{name}.yml when only that
// one exists.
func EnvironmentPath(fs fsys.FileSystem, dir, name string) string {
	path := fs.Join(dir, name+".yaml")
	if exists(fs, path) {
		return path
	}
	if alt := fs.Join(dir, name+".yml"); exists(fs, alt) {
		return alt
	}
	return path
}

func exists(fs fsys.FileSystem, path string) bool {
	ok, err := fs.Exists(path)
	return err == nil && ok
}

// LoadNamedEnvironment loads the environment called name from dir.
func LoadNamedEnvironment(fs fsys.FileSystem, dir, name string) (map[string]string, error) {
	return LoadEnvironment(fs, EnvironmentPath(fs, dir, name))
}

// SaveEnvironment saves environment variables to a YAML file
func SaveEnvironment(fs fsys.FileSystem, env map[string]string, filePath string) error {
	return writeYAML(fs, env, filePath)
}

// ListEnvironments lists the environment names found in dir
func ListEnvironments(fs fsys.FileSystem, dir string) ([]string, error) {
	ok, err := fs.Exists(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read environments directory: %w", err)
	}

	envs := []string{}
	for _, entry := range entries {
		if !entry.IsDirectory && isYAML(entry.Name) {
			envs = append(envs, strings.TrimSuffix(strings.TrimSuffix(entry.Name, ".yaml"), ".yml"))
		}
	}
	sort.Strings(envs)
	return envs, nil
}

// SubstituteVariables replaces {{VAR}} placeholders with values from the environment
func SubstituteVariables(text string, env map[string]string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		varName := strings.TrimSpace(strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{"))

		if strings.HasPrefix(varName, "env:") {
			if val := os.Getenv(strings.TrimPrefix(varName, "env:")); val != "" {
				return val
			}
			return match
		}

		if val, ok := env[varName]; ok {
			return val
		}
		return match
	})
}

// ApplyEnvironment returns a copy of rec with variables substituted in the
// URL, header values and body.
func ApplyEnvironment(rec rest.Record, env map[string]string) rest.Record {
	applied := rec
	applied.URL = SubstituteVariables(rec.URL, env)

	applied.Headers = make([]rest.KeyValue, len(rec.Headers))
	for i, h := range rec.Headers {
		applied.Headers[i] = rest.KeyValue{Key: h.Key, Value: SubstituteVariables(h.Value, env)}
	}

	if !rec.Body.IsEmpty() {
		applied.Body = rest.Body{Kind: rec.Body.Kind, Content: SubstituteVariables(rec.Body.Content, env)}
	}
	return applied
}

// resolveEnvRefs resolves {{env:VAR}} references in a string
func resolveEnvRefs(text string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		varName := strings.TrimSpace(strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{"))

		if strings.HasPrefix(varName, "env:") {
			if val := os.Getenv(strings.TrimPrefix(varName, "env:")); val != "" {
				return val
			}
		}
		return match
	})
}
