// Package config loads layered KEY=value configuration files.
// Later files override earlier keys; the filesystem is abstracted behind
// afero so tests run against an in-memory fs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// DefaultServer is the lookup service queried when DNSDB_SERVER is unset.
const DefaultServer = "https://api.dnsdb.info"

const (
	systemConfigPath = "/etc/dnsdb-query.conf"
	userConfigName   = ".dnsdb-query.conf"
)

// Config holds the resolved client settings.
type Config struct {
	Server  string
	APIKey  string
	Timeout int // HTTP timeout in seconds, 0 = transport default
}

// Load reads each path as KEY=value lines (double-quoted values have
// their quotes stripped) and merges them into one map, later files
// overriding earlier ones. An empty path list or an unreadable file is
// an error.
func Load(fsys afero.Fs, paths []string) (map[string]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no config files to parse")
	}
	merged := make(map[string]string)
	for _, path := range paths {
		f, err := fsys.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		kv, parseErr := godotenv.Parse(f)
		_ = f.Close()
		if parseErr != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, parseErr)
		}
		for k, v := range kv {
			merged[k] = v
		}
	}
	return merged, nil
}

// FromMap validates the merged settings and applies defaults. APIKEY is
// required; DNSDB_SERVER and DNSDB_TIMEOUT are optional.
func FromMap(settings map[string]string) (*Config, error) {
	apiKey := settings["APIKEY"]
	if apiKey == "" {
		return nil, fmt.Errorf("APIKEY not defined in config file")
	}

	cfg := &Config{Server: DefaultServer, APIKey: apiKey}
	if s := settings["DNSDB_SERVER"]; s != "" {
		cfg.Server = s
	}
	if t := settings["DNSDB_TIMEOUT"]; t != "" {
		secs, err := strconv.Atoi(t)
		if err != nil || secs < 0 {
			return nil, fmt.Errorf("invalid DNSDB_TIMEOUT %q", t)
		}
		cfg.Timeout = secs
	}
	return cfg, nil
}

// DefaultFiles returns the system-wide and per-user config candidates,
// filtered to those that exist. Used only when no explicit config file
// is given.
func DefaultFiles(fsys afero.Fs) []string {
	candidates := []string{systemConfigPath}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, userConfigName))
	}
	var existing []string
	for _, p := range candidates {
		if ok, _ := afero.Exists(fsys, p); ok {
			existing = append(existing, p)
		}
	}
	return existing
}

// ApplyIntOverride layers a changed CLI flag over a config value.
func ApplyIntOverride(flagChanged bool, flagValue int, target *int) {
	if flagChanged {
		*target = flagValue
	}
}
