package mode

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override document
//
//	modes:
//	  survival:
//	    lives: 5
//	    spawnInterval: 1800ms
type File struct {
	Modes map[string]yaml.Node `yaml:"modes"`
}

// LoadFile reads overrides from path and applies every valid mode
// Fields absent from the file keep their current values. Invalid modes are
// skipped and reported together in the returned error; valid ones still apply
func (c *Catalog) LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mode file: %w", err)
	}
	return c.Load(data)
}

// Load applies overrides from a YAML document and returns the applied ids
func (c *Catalog) Load(data []byte) ([]string, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse mode file: %w", err)
	}

	ids := make([]string, 0, len(f.Modes))
	for id := range f.Modes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var (
		applied []string
		errs    []error
	)
	for _, id := range ids {
		node := f.Modes[id]
		cfg := c.base(id)
		if err := node.Decode(&cfg); err != nil {
			errs = append(errs, fmt.Errorf("mode %s: %w", id, err))
			continue
		}
		cfg.ID = id
		if err := c.Set(cfg); err != nil {
			errs = append(errs, err)
			continue
		}
		applied = append(applied, id)
	}
	return applied, errors.Join(errs...)
}

// Marshal renders the current catalog as an override document
func (c *Catalog) Marshal() ([]byte, error) {
	c.mu.RLock()
	modes := make(map[string]Config, len(c.modes))
	for id, m := range c.modes {
		modes[id] = m
	}
	c.mu.RUnlock()

	out, err := yaml.Marshal(struct {
		Modes map[string]Config `yaml:"modes"`
	}{modes})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal modes: %w", err)
	}
	return out, nil
}
