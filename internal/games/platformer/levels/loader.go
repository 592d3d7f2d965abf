package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

//go:embed default/*.yaml
var defaultFS embed.FS

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Levels are sorted by Order, then ID.
func (l *Loader) LoadAll() ([]Def, error) {
	var defs []Def

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(p)) {
			return nil
		}

		def, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sortDefs(defs)
	return defs, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Def, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Def{}, fmt.Errorf("levels: reading file %s: %w", p, err)
	}

	def, err := ParseYAML(data)
	if err != nil {
		return Def{}, fmt.Errorf("levels: parsing file %s: %w", p, err)
	}
	def.FilePath = p
	return def, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Def, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return Def{}, err
	}

	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}
	return Def{}, fmt.Errorf("levels: level not found: %s", id)
}

// Defaults returns the built-in campaign.
func Defaults() ([]Def, error) {
	files, err := fs.Glob(defaultFS, "default/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: listing built-in levels: %w", err)
	}

	defs := make([]Def, 0, len(files))
	for _, f := range files {
		data, err := defaultFS.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", f, err)
		}
		def, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: built-in %s: %w", path.Base(f), err)
		}
		defs = append(defs, def)
	}

	sortDefs(defs)
	return defs, nil
}

// RegisterDefaults adds the built-in campaign to the catalog.
// Levels that are already registered are left alone.
func RegisterDefaults() error {
	defs, err := Defaults()
	if err != nil {
		return err
	}

	for _, def := range defs {
		if !registry.Exists(def.ID) {
			registry.Register(def.Entry())
		}
	}
	return nil
}

// Register adds levels to the catalog. A level whose ID is already
// registered is reported as an error and the rest are still added.
func Register(defs []Def) error {
	var dups []string
	for _, def := range defs {
		if registry.Exists(def.ID) {
			dups = append(dups, def.ID)
			continue
		}
		registry.Register(def.Entry())
	}
	if len(dups) > 0 {
		return fmt.Errorf("levels: already registered: %s", strings.Join(dups, ", "))
	}
	return nil
}

func sortDefs(defs []Def) {
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Order != defs[j].Order {
			return defs[i].Order < defs[j].Order
		}
		return defs[i].ID < defs[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(ext))
}
