// Package config contains the repository configuration: the [core]
// section of .git/config
package config

import (
	"bytes"

	"github.com/go-ini/ini"
	"golang.org/x/xerrors"
)

// Section/key names used in .git/config
const (
	sectionCore  = "core"
	keyFormatVer = "repositoryformatversion"
	keyFileMode  = "filemode"
	keyBare      = "bare"
)

// SupportedFormatVersion is the only core.repositoryformatversion this
// core knows how to read
const SupportedFormatVersion = 0

// Config holds the parsed contents of a repository's .git/config file
type Config struct {
	file *ini.File
}

// Default returns the configuration written by repo.Create: format
// version 0, filemode disabled, not bare.
func Default() *Config {
	f := ini.Empty()
	sec, _ := f.NewSection(sectionCore) //nolint:errcheck // NewSection on a fresh file never fails
	_, _ = sec.NewKey(keyFormatVer, "0")
	_, _ = sec.NewKey(keyFileMode, "false")
	_, _ = sec.NewKey(keyBare, "false")
	return &Config{file: f}
}

// Load parses the INI-formatted bytes of a .git/config file
func Load(raw []byte) (*Config, error) {
	f, err := ini.Load(raw)
	if err != nil {
		return nil, xerrors.Errorf("could not parse config: %w", err)
	}
	return &Config{file: f}, nil
}

// RepositoryFormatVersion returns core.repositoryformatversion, or -1
// if it isn't set
func (c *Config) RepositoryFormatVersion() int {
	if !c.file.Section(sectionCore).HasKey(keyFormatVer) {
		return -1
	}
	return c.file.Section(sectionCore).Key(keyFormatVer).MustInt(-1)
}

// FileMode returns core.filemode
func (c *Config) FileMode() bool {
	return c.file.Section(sectionCore).Key(keyFileMode).MustBool(false)
}

// Bare returns core.bare
func (c *Config) Bare() bool {
	return c.file.Section(sectionCore).Key(keyBare).MustBool(false)
}

// Bytes serializes the config back to its INI on-disk form
func (c *Config) Bytes() ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := c.file.WriteTo(buf); err != nil {
		return nil, xerrors.Errorf("could not serialize config: %w", err)
	}
	return buf.Bytes(), nil
}
