// Package core holds the reqtree configuration: the .reqtree folder and the
// settings read from it, the environment and .env files.
package core

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved reqtree configuration.
type Config struct {
	Workspace    string
	RequestsDir  string
	AutoSave     bool
	Verbose      bool
	HistoryLimit int
	HistoryFile  string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("workspace", ".")
	v.SetDefault("requests_dir", "http")
	v.SetDefault("autosave", false)
	v.SetDefault("verbose", false)
	v.SetDefault("history_limit", 10)
	v.SetDefault("history_file", ConfigFolderName+"/history.yaml")
}

// ConfigureViper points v at the config file (cfgFile when set, otherwise
// .reqtree/config.yaml below base) and at REQTREE_* environment variables.
func ConfigureViper(v *viper.Viper, cfgFile, base string) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(base + "/" + ConfigFolderName)
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("REQTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// LoadConfig reads the settings currently known to v.
func LoadConfig(v *viper.Viper) Config {
	return Config{
		Workspace:    v.GetString("workspace"),
		RequestsDir:  v.GetString("requests_dir"),
		AutoSave:     v.GetBool("autosave"),
		Verbose:      v.GetBool("verbose"),
		HistoryLimit: v.GetInt("history_limit"),
		HistoryFile:  v.GetString("history_file"),
	}
}
