// Package prepareroot reads the ostree prepare-root configuration that
// controls how a deployment root is assembled at boot.
package prepareroot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// ConfPath is the prepare-root configuration location inside a root.
const ConfPath = "usr/lib/ostree/prepare-root.conf"

// Config is a loaded prepare-root keyfile.
type Config struct {
	file *ini.File
}

// LoadConfig reads the prepare-root configuration from root, or returns
// (nil, nil) when none is present.
func LoadConfig(root *os.Root) (*Config, error) {
	data, err := root.ReadFile(ConfPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfPath, err)
	}
	return &Config{file: file}, nil
}

// ComposefsEnabled reports whether the configuration turns on the composefs
// overlay. The enabled key is tri-state: plain booleans, yes/no, or signed
// (composefs with signature verification, which implies enabled). An absent
// section or key means disabled.
func (c *Config) ComposefsEnabled() (bool, error) {
	value := c.file.Section("composefs").Key("enabled").String()
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no":
		return false, nil
	case "1", "true", "yes", "signed":
		return true, nil
	default:
		return false, fmt.Errorf("invalid composefs enabled value %q in %s", value, ConfPath)
	}
}
