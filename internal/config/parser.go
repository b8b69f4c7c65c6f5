package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ParseFile reads and parses a configuration file.
func (p *LuaConfigParser) ParseFile(path string) ([]NamedConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return p.Parse(content)
}

// ParseFromFS reads and parses a configuration file from a filesystem,
// such as one embedded with go:embed.
func (p *LuaConfigParser) ParseFromFS(fsys fs.FS, path string) ([]NamedConfig, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from FS %s: %w", path, err)
	}

	return p.Parse(content)
}

// ParseReader parses configuration read from r.
func (p *LuaConfigParser) ParseReader(r io.Reader) ([]NamedConfig, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return p.Parse(content)
}
