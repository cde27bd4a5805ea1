package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// currentAccountFile sits next to the state database unless accounts_file says otherwise.
const currentAccountFile = "current_account"

// CurrentAccountPath is where the selected account name is persisted.
func (c *Config) CurrentAccountPath() string {
	if c.AccountsFile != "" {
		return c.AccountsFile
	}
	return filepath.Join(filepath.Dir(c.State.Path), currentAccountFile)
}

// AccountNames lists the configured account names in sorted order.
func (c *Config) AccountNames() []string {
	names := make([]string, 0, len(c.Accounts))
	for name := range c.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupAccount returns the address of a named account. Names are matched
// case-insensitively since viper lowercases map keys.
func (c *Config) LookupAccount(name string) (string, error) {
	addr, ok := c.Accounts[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("unknown account %q", name)
	}
	if addr == "" {
		return "", fmt.Errorf("account %q has no address", name)
	}
	return addr, nil
}

// resolveSender picks the transaction sender: an explicit account name first,
// then the persisted current account, then the plain sender key.
func (c *Config) resolveSender() error {
	persisted := false
	if c.Account == "" {
		name, err := ReadCurrentAccount(c.CurrentAccountPath())
		if err != nil {
			return err
		}
		c.Account, persisted = name, true
	}
	if c.Account == "" {
		return nil
	}
	addr, err := c.LookupAccount(c.Account)
	if err != nil {
		if persisted {
			return fmt.Errorf("current account saved in %s: %w", c.CurrentAccountPath(), err)
		}
		return err
	}
	c.Account = strings.ToLower(c.Account)
	c.Sender = addr
	return nil
}

// ReadCurrentAccount returns the persisted account name, or "" if none was saved.
func ReadCurrentAccount(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read current account: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveCurrentAccount persists name so later runs send as that account.
func SaveCurrentAccount(path, name string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create accounts dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.ToLower(name)+"\n"), 0o644); err != nil {
		return fmt.Errorf("save current account: %w", err)
	}
	return nil
}
