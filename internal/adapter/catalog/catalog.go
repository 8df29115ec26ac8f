// Package catalog serves the static wellness catalog: curated resources,
// emergency contacts and preset goal types. The catalog is embedded in the
// binary and parsed once at startup.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/pkg/markdown"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type fileResource struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
	Source      string `yaml:"source"`
}

type fileContact struct {
	Name        string `yaml:"name"`
	Number      string `yaml:"number"`
	Description string `yaml:"description"`
}

type file struct {
	Resources         []fileResource `yaml:"resources"`
	EmergencyContacts []fileContact  `yaml:"emergency_contacts"`
	GoalSuggestions   []string       `yaml:"goal_suggestions"`
}

// Catalog is an immutable, parsed catalog. Safe for concurrent use.
type Catalog struct {
	resources       []domain.Resource
	contacts        []domain.EmergencyContact
	goalSuggestions []string
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	c := &Catalog{
		resources:       make([]domain.Resource, 0, len(f.Resources)),
		contacts:        make([]domain.EmergencyContact, 0, len(f.EmergencyContacts)),
		goalSuggestions: make([]string, 0, len(f.GoalSuggestions)),
	}

	seen := make(map[string]bool, len(f.Resources))
	for i, r := range f.Resources {
		if err := validateResource(r, seen); err != nil {
			return nil, fmt.Errorf("catalog: resources[%d]: %w", i, err)
		}
		seen[r.ID] = true

		html, err := markdown.Render(r.Description)
		if err != nil {
			return nil, fmt.Errorf("catalog: resources[%d]: %w", i, err)
		}

		c.resources = append(c.resources, domain.Resource{
			ID:              r.ID,
			Title:           domain.CollapseSpaces(r.Title),
			Description:     r.Description,
			DescriptionHTML: html,
			Link:            r.Link,
			Source:          domain.CollapseSpaces(r.Source),
		})
	}

	for i, ct := range f.EmergencyContacts {
		if ct.Name == "" || ct.Number == "" {
			return nil, fmt.Errorf("catalog: emergency_contacts[%d]: name and number are required", i)
		}
		c.contacts = append(c.contacts, domain.EmergencyContact{
			Name:        ct.Name,
			Number:      ct.Number,
			Description: ct.Description,
		})
	}

	for _, g := range f.GoalSuggestions {
		if g = domain.CollapseSpaces(g); g != "" && !slices.Contains(c.goalSuggestions, g) {
			c.goalSuggestions = append(c.goalSuggestions, g)
		}
	}

	return c, nil
}

func validateResource(r fileResource, seen map[string]bool) error {
	switch {
	case r.ID == "":
		return errors.New("id is required")
	case seen[r.ID]:
		return fmt.Errorf("duplicate id %q", r.ID)
	case r.Title == "":
		return errors.New("title is required")
	}

	u, err := url.Parse(r.Link)
	if err != nil {
		return fmt.Errorf("link: %w", err)
	}
	switch u.Scheme {
	case "https", "http", "tel":
		return nil
	default:
		return fmt.Errorf("link %q: unsupported scheme", r.Link)
	}
}

// Resources returns the curated resources in catalog order.
func (c *Catalog) Resources() []domain.Resource {
	return slices.Clone(c.resources)
}

// EmergencyContacts returns the crisis contacts in catalog order.
func (c *Catalog) EmergencyContacts() []domain.EmergencyContact {
	return slices.Clone(c.contacts)
}

// GoalSuggestions returns the preset goal types.
func (c *Catalog) GoalSuggestions() []string {
	return slices.Clone(c.goalSuggestions)
}
