package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Subfaction is one subfaction entry of the hierarchy configuration.
type Subfaction struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// Faction is one faction entry of the hierarchy configuration.
type Faction struct {
	Name        string       `yaml:"name"`
	Icon        string       `yaml:"icon"`
	Subfactions []Subfaction `yaml:"subfactions"`
}

// Hierarchy declares the faction/subfaction structure and the category
// names the loader looks for. Directory naming is configuration, not
// something inferred from the tree; the loader only falls back to spelling
// variants when the exact name is absent.
type Hierarchy struct {
	Factions   []Faction `yaml:"factions"`
	Categories []string  `yaml:"categories"`
}

// DefaultHierarchy returns the built-in Mental Omega faction hierarchy.
func DefaultHierarchy() *Hierarchy {
	return &Hierarchy{
		Factions: []Faction{
			{
				Name: "Allied Nations", Icon: "Allicon",
				Subfactions: []Subfaction{
					{Name: "United States", Icon: "USAicon"},
					{Name: "European Alliance", Icon: "EAicon"},
					{Name: "Pacific Front", Icon: "PFicon"},
				},
			},
			{
				Name: "Soviet Union", Icon: "Sovicon",
				Subfactions: []Subfaction{
					{Name: "Russia", Icon: "Russiaicon"},
					{Name: "Latin Confederation", Icon: "Confederationicon"},
					{Name: "China", Icon: "Chinaicon"},
				},
			},
			{
				Name: "Epsilon Army", Icon: "Yuricon",
				Subfactions: []Subfaction{
					{Name: "PsiCorps", Icon: "PCicon"},
					{Name: "Scorpion Cell", Icon: "SCicon"},
					{Name: "Epsilon Headquarters", Icon: "HQicon"},
				},
			},
			{
				Name: "Foehn Revolt", Icon: "Foeicon",
				Subfactions: []Subfaction{
					{Name: "Haihead", Icon: "HHicon"},
					{Name: "Last Bastion", Icon: "LBicon"},
					{Name: "Wings of Coronia", Icon: "WCicon"},
				},
			},
		},
		Categories: []string{
			"Structures", "Defenses", "Infantry", "Vehicles", "Aircraft", "Support powers",
		},
	}
}

// LoadHierarchy reads a hierarchy configuration from a YAML file.
func LoadHierarchy(path string) (*Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy file: %w", err)
	}

	var h Hierarchy
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("failed to parse hierarchy file %s: %w", path, err)
	}

	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hierarchy in %s: %w", path, err)
	}
	return &h, nil
}

// LoadHierarchyOrDefault reads the hierarchy from path, falling back to the
// built-in hierarchy when the file is absent.
func LoadHierarchyOrDefault(path string) (*Hierarchy, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultHierarchy(), nil
	}
	return LoadHierarchy(path)
}

// Validate checks that the hierarchy is usable by the loader.
func (h *Hierarchy) Validate() error {
	if len(h.Factions) == 0 {
		return fmt.Errorf("no factions declared")
	}
	if len(h.Categories) == 0 {
		return fmt.Errorf("no categories declared")
	}
	seen := make(map[string]bool, len(h.Factions))
	for _, f := range h.Factions {
		if f.Name == "" {
			return fmt.Errorf("faction with empty name")
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate faction %q", f.Name)
		}
		seen[f.Name] = true

		subSeen := make(map[string]bool, len(f.Subfactions))
		for _, s := range f.Subfactions {
			if s.Name == "" {
				return fmt.Errorf("faction %q has a subfaction with empty name", f.Name)
			}
			if subSeen[s.Name] {
				return fmt.Errorf("faction %q has duplicate subfaction %q", f.Name, s.Name)
			}
			subSeen[s.Name] = true
		}
	}
	return nil
}

// Faction returns the faction entry with the given name.
func (h *Hierarchy) Faction(name string) (Faction, bool) {
	for _, f := range h.Factions {
		if f.Name == name {
			return f, true
		}
	}
	return Faction{}, false
}

// SubfactionIcon returns the icon name for a subfaction of a faction.
func (h *Hierarchy) SubfactionIcon(faction, subfaction string) string {
	f, ok := h.Faction(faction)
	if !ok {
		return ""
	}
	for _, s := range f.Subfactions {
		if s.Name == subfaction {
			return s.Icon
		}
	}
	return ""
}
