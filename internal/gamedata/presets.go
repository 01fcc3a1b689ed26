package gamedata

import (
	"errors"
	"fmt"
)

// DefaultPresetID names the preset used when none is chosen.
const DefaultPresetID = "classic"

// PresetDef is a named game configuration loaded from JSON.
type PresetDef struct {
	ID           string  `json:"id"`           // Unique identifier (e.g., "classic")
	Name         string  `json:"name"`         // Display name
	Width        int     `json:"width"`        // Maze width in junctions
	Height       int     `json:"height"`       // Maze height in junctions
	Density      float64 `json:"density"`      // Wall probability per candidate cell
	PlayerLife   int     `json:"playerLife"`   // Player starting life
	MonsterLife  int     `json:"monsterLife"`  // Monster starting life
	MonsterCount int     `json:"monsterCount"` // Monsters placed at start
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// PresetRegistry holds loaded presets keyed by ID.
type PresetRegistry struct {
	presets map[string]*PresetDef
	all     []PresetDef
}

// NewPresetRegistry creates a registry from loaded preset definitions.
func NewPresetRegistry(presets []PresetDef) *PresetRegistry {
	registry := &PresetRegistry{
		presets: make(map[string]*PresetDef),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	if len(file.Presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewPresetRegistry(file.Presets), nil
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	return r.presets[id]
}

// Lookup returns the preset with the given ID or an error naming the known presets.
func (r *PresetRegistry) Lookup(id string) (*PresetDef, error) {
	if p := r.presets[id]; p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("unknown preset %q (known: %v)", id, r.IDs())
}

// IDs returns the preset IDs in file order.
func (r *PresetRegistry) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, p := range r.all {
		ids = append(ids, p.ID)
	}
	return ids
}

// All returns all preset definitions.
func (r *PresetRegistry) All() []PresetDef {
	return r.all
}
