package bank

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// bankPatterns are the glob patterns used to discover bank definition
// files under a banks root. Patterns are matched with doublestar so banks
// may be organized into subdirectories per business domain.
var bankPatterns = []string{
	"**/*.yaml",
	"**/*.yml",
}

// Parse decodes a single bank definition from YAML and validates it.
func Parse(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("error parsing bank definition: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadFile reads and parses one bank definition file.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank file: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Registry holds all banks discovered under a banks root, indexed by id.
// It is built once and treated as immutable afterwards.
type Registry struct {
	banks map[string]*Bank
	paths map[string]string // bank id -> source file
}

// DiscoverFiles returns the bank definition files under root, sorted for
// deterministic load order.
func DiscoverFiles(root string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range bankPatterns {
		matches, err := doublestar.Glob(os.DirFS(root), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			full := filepath.Join(root, match)
			info, err := os.Stat(full)
			if err != nil || info.IsDir() {
				continue
			}
			if !seen[full] {
				seen[full] = true
				files = append(files, full)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadDir discovers and loads every bank under root. Any invalid bank
// aborts the load: configuration errors are deployment defects and must
// not be papered over.
func LoadDir(root string) (*Registry, error) {
	files, err := DiscoverFiles(root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no bank definitions found under %s", root)
	}

	r := &Registry{
		banks: make(map[string]*Bank, len(files)),
		paths: make(map[string]string, len(files)),
	}
	for _, path := range files {
		b, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if existing, ok := r.paths[b.ID]; ok {
			return nil, fmt.Errorf("duplicate bank id %q in %s and %s", b.ID, existing, path)
		}
		r.banks[b.ID] = b
		r.paths[b.ID] = path
	}
	return r, nil
}

// Get returns the bank with the given id.
func (r *Registry) Get(id string) (*Bank, bool) {
	b, ok := r.banks[id]
	return b, ok
}

// Path returns the source file a bank was loaded from.
func (r *Registry) Path(id string) string {
	return r.paths[id]
}

// IDs returns all bank ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.banks))
	for id := range r.banks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
