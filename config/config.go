package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/pkg/errors"
	"github.com/titanous/json5"

	"github.com/mberetvas/FoodScraper/scrape"
)

// LoadSites returns the selector sets to scrape with, keyed by host. The
// compiled-in defaults are always present; when path is given, the json5
// file at that path and an optional `<name>.local.<ext>` sibling are merged
// on top of them, higher file wins, field by field. This lets a user patch
// a single selector of one site or add a whole new site without rebuilding.
func LoadSites(path string) (map[string]scrape.Selectors, error) {
	sites := scrape.DefaultSites()
	if path == "" {
		return sites, nil
	}

	if err := mergeFile(&sites, path, false); err != nil {
		return nil, err
	}

	if err := mergeFile(&sites, localVariant(path), true); err != nil {
		return nil, err
	}

	return sites, nil
}

func mergeFile(dst *map[string]scrape.Selectors, path string, optional bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read selector file %s", path)
	}

	var override map[string]scrape.Selectors
	if err := json5.Unmarshal(raw, &override); err != nil {
		return errors.Wrapf(err, "failed to parse selector file %s", path)
	}

	// Merge per host: map values aren't addressable, so merging the maps
	// directly would replace a site's whole selector set instead of
	// patching the fields the file actually sets.
	for host, overrideEntry := range override {
		entry := (*dst)[host]
		if err := mergo.Merge(&entry, overrideEntry, mergo.WithOverride); err != nil {
			return errors.Wrapf(err, "failed to merge selectors for %s", host)
		}
		(*dst)[host] = entry
	}

	return nil
}

func splitExt(name string) (string, string) {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i], name[i+1:]
		}
	}
	return name, ""
}

// localVariant turns path/to/selectors.json5 into path/to/selectors.local.json5.
func localVariant(path string) string {
	dir := filepath.Dir(path)
	prefix, ext := splitExt(filepath.Base(path))
	return filepath.Join(dir, fmt.Sprintf("%s.local.%s", prefix, ext))
}
