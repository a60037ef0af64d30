// Package config resolves which spec files `rubyspec run all` should run:
// a manifest file in the current directory takes precedence over a
// default directory walk.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// Manifest is the optional rubyspec.json that pins an explicit, ordered
// list of spec files instead of a directory walk.
type Manifest struct {
	Files []string `json:"files"`
}

const (
	manifestName   = "rubyspec.json"
	defaultSpecDir = "spec"
)

// ResolveFiles returns the spec files to run for `run all`: the manifest's
// Files list if a rubyspec.json exists in dir, otherwise every "*.rb" file
// found by walking dir/spec, sorted by path.
func ResolveFiles(dir string) ([]string, error) {
	manifestPath := filepath.Join(dir, manifestName)
	if data, err := os.ReadFile(manifestPath); err == nil {
		var m Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		out := make([]string, len(m.Files))
		for i, f := range m.Files {
			out[i] = filepath.Join(dir, f)
		}
		return out, nil
	}

	root := filepath.Join(dir, defaultSpecDir)
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return nil
			}
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".rb" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
