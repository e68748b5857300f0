// Package airline holds the carrier catalog: canonical names, service-model
// classification, and the value identity values-fit questions are rendered
// against. The catalog ships embedded; deployments may override it with an
// external file.
package airline

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/internal/question"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Airline is one catalog entry.
type Airline struct {
	Name       string             `yaml:"name"`
	Aliases    []string           `yaml:"aliases"`
	Type       domain.AirlineType `yaml:"type"`
	Integrated bool               `yaml:"integrated"`
	Keywords   []string           `yaml:"keywords"`
	Desc       string             `yaml:"desc"`
}

type typeDefaults struct {
	Keywords []string `yaml:"keywords"`
	Desc     string   `yaml:"desc"`
}

type catalogFile struct {
	Defaults map[domain.AirlineType]typeDefaults `yaml:"defaults"`
	Airlines []Airline                           `yaml:"airlines"`
}

// Catalog resolves free-form airline input to a canonical profile.
type Catalog struct {
	defaults map[domain.AirlineType]typeDefaults
	byName   map[string]*Airline
	ordered  []Airline
}

// Load parses a catalog. Unknown airline types and empty names are rejected
// so a bad override file fails at startup, not at question time.
func Load(raw []byte) (*Catalog, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("airline catalog: parse: %w", err)
	}
	if len(cf.Airlines) == 0 {
		return nil, fmt.Errorf("airline catalog: no airlines: %w", domain.ErrSchemaInvalid)
	}
	c := &Catalog{
		defaults: cf.Defaults,
		byName:   make(map[string]*Airline),
		ordered:  cf.Airlines,
	}
	for i := range c.ordered {
		a := &c.ordered[i]
		if a.Name == "" {
			return nil, fmt.Errorf("airline catalog: entry %d has no name: %w", i, domain.ErrSchemaInvalid)
		}
		switch a.Type {
		case domain.AirlineFSC, domain.AirlineLCC, domain.AirlineHSC:
		default:
			return nil, fmt.Errorf("airline catalog: %s: unknown type %q: %w", a.Name, a.Type, domain.ErrSchemaInvalid)
		}
		c.byName[normalizeKey(a.Name)] = a
		for _, al := range a.Aliases {
			c.byName[normalizeKey(al)] = a
		}
	}
	return c, nil
}

// LoadDefault returns the embedded catalog, or the file at path when set.
func LoadDefault(path string) (*Catalog, error) {
	raw := embeddedCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("airline catalog: read %s: %w", path, err)
		}
		raw = b
	}
	return Load(raw)
}

func normalizeKey(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "")
}

// Resolve maps user input to a catalog entry. Input with the 항공 suffix
// dropped ("제주" for 제주항공) still resolves. Unknown carriers classify as
// LCC with per-type default values, mirroring how the generator treats an
// unrecognized airline: degrade, never fail.
func (c *Catalog) Resolve(input string) Airline {
	key := normalizeKey(input)
	if a, ok := c.byName[key]; ok {
		return *a
	}
	if a, ok := c.byName[key+"항공"]; ok {
		return *a
	}
	if trimmed := strings.TrimSuffix(key, "항공"); trimmed != key {
		if a, ok := c.byName[trimmed]; ok {
			return *a
		}
	}
	d := c.defaults[domain.AirlineLCC]
	name := strings.TrimSpace(input)
	if name == "" {
		name = "항공사"
	}
	return Airline{
		Name:     name,
		Type:     domain.AirlineLCC,
		Keywords: d.Keywords,
		Desc:     d.Desc,
	}
}

// Profile adapts a catalog entry for the question renderer, substituting the
// per-type defaults when an entry carries no keywords of its own.
func (c *Catalog) Profile(input string) question.ValueProfile {
	a := c.Resolve(input)
	kws, desc := a.Keywords, a.Desc
	if len(kws) == 0 {
		d := c.defaults[a.Type]
		kws = d.Keywords
		if desc == "" {
			desc = d.Desc
		}
	}
	return question.ValueProfile{
		DisplayName: a.Name,
		Type:        a.Type,
		Keywords:    kws,
		Desc:        desc,
		Integrated:  a.Integrated,
	}
}

// Names lists the canonical carrier names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.ordered))
	for i, a := range c.ordered {
		out[i] = a.Name
	}
	return out
}
