// Package levels loads platformer level files and registers them in the
// level catalog. Built-in levels are embedded; more can be loaded from a
// directory at startup.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"gopkg.in/yaml.v3"
)

// ErrMissingID is returned for a level file without an id.
var ErrMissingID = errors.New("levels: missing id")

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Order    int               `yaml:"order,omitempty"`
	Plan     string            `yaml:"plan"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Def is a validated level definition.
type Def struct {
	ID       string
	Name     string
	Order    int
	Plan     string
	Metadata map[string]string
	FilePath string

	// Width and Height are the plan's grid size; Coins is how many it starts with.
	Width  int
	Height int
	Coins  int
}

// ParseYAML parses a level file. The plan must be a valid level.
func ParseYAML(data []byte) (Def, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Def{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Def{}, ErrMissingID
	}

	lvl, err := sim.ParseLevel(yl.Plan)
	if err != nil {
		return Def{}, fmt.Errorf("levels: %s: %w", yl.ID, err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Def{
		ID:       yl.ID,
		Name:     name,
		Order:    yl.Order,
		Plan:     yl.Plan,
		Metadata: yl.Metadata,
		Width:    lvl.Width(),
		Height:   lvl.Height(),
		Coins:    lvl.CountKind(sim.KindCoin),
	}, nil
}

// Description returns the level's description metadata, if any.
func (d Def) Description() string {
	return d.Metadata["description"]
}

// Entry converts the definition into a catalog entry.
func (d Def) Entry() registry.Entry {
	return registry.Entry{
		ID:       d.ID,
		Name:     d.Name,
		Order:    d.Order,
		Plan:     d.Plan,
		Metadata: d.Metadata,
		Source:   d.FilePath,
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
