// Package seed reads the feature catalog shipped with the service.
package seed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
)

type FeatureEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Scope       []string `yaml:"scope"`
}

type Catalog struct {
	Features []FeatureEntry `yaml:"features"`
}

func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, err
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Load decodes a catalog and rejects unnamed or duplicate entries.
func Load(r io.Reader) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(c.Features))
	for i, f := range c.Features {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return Catalog{}, fmt.Errorf("catalog entry %d: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return Catalog{}, fmt.Errorf("catalog entry %d: duplicate name %q", i, name)
		}
		seen[name] = struct{}{}
	}
	return c, nil
}

// Inputs converts the catalog into feature inputs; scopes are validated by the service.
func (c Catalog) Inputs() []application.FeatureInput {
	out := make([]application.FeatureInput, 0, len(c.Features))
	for _, f := range c.Features {
		out = append(out, application.FeatureInput{
			Name:        f.Name,
			Description: f.Description,
			Scope:       f.Scope,
		})
	}
	return out
}
