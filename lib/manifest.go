package ckan

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the persisted metadata of a single mod. Compatibility
// with the game is declared either as a single game_version, which is
// treated as a prefix constraint ("1.2" accepts every 1.2.x.x), or as
// explicit game_version_min / game_version_max edges. The reserved
// string "any" in any of these fields means no constraint.
type Manifest struct {
	Identifier     string       `json:"identifier"`
	Name           string       `json:"name,omitempty"`
	Version        *GameVersion `json:"version,omitempty"`
	GameVersion    *GameVersion `json:"game_version,omitempty"`
	GameVersionMin *GameVersion `json:"game_version_min,omitempty"`
	GameVersionMax *GameVersion `json:"game_version_max,omitempty"`
}

// ReadManifest reads and decodes a manifest file. A manifest that
// fails to decode is a hard error; it must never pass as compatible.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("unable to read manifest %s: %w", path, err)
	}
	if manifest.Identifier == "" {
		return nil, fmt.Errorf("manifest %s has no identifier", path)
	}
	return &manifest, nil
}

// CompatRange returns the range of game versions this mod declares
// itself compatible with. game_version wins over min/max when both are
// present; a mod that declares nothing is compatible with everything.
func (m *Manifest) CompatRange() *GameVersionRange {
	if m.GameVersion != nil {
		return m.GameVersion.ToVersionRange()
	}
	if m.GameVersionMin == nil && m.GameVersionMax == nil {
		return AnyVersionRange
	}

	// min and max are prefix constraints as well: a max of "1.3"
	// admits every 1.3.x.x, so the edge comes from the implied range.
	var lower, upper GameVersionBound
	if m.GameVersionMin != nil {
		lower = m.GameVersionMin.ToVersionRange().Lower
	}
	if m.GameVersionMax != nil {
		upper = m.GameVersionMax.ToVersionRange().Upper
	}
	return NewGameVersionRange(lower, upper)
}

// WorksWith reports whether a game installation at the given version
// satisfies this mod's declared compatibility. The installed version's
// implied range must fit entirely inside the declared range.
func (m *Manifest) WorksWith(game *GameVersion) bool {
	if game == nil {
		return false
	}
	return m.CompatRange().IsSupersetOf(game.ToVersionRange())
}

// CombinedCompatRange returns the bounding interval of the declared
// compatibility of several mods: the narrowest single interval that
// still covers every mod's declared range. It is not an intersection;
// a version inside the result may still fail WorksWith for an
// individual mod.
func CombinedCompatRange(manifests ...*Manifest) (*GameVersionRange, error) {
	if len(manifests) == 0 {
		return nil, ErrNoVersions
	}
	ranges := make([]*GameVersionRange, 0, len(manifests))
	for _, m := range manifests {
		if m == nil {
			return nil, ErrNilVersion
		}
		ranges = append(ranges, m.CompatRange())
	}
	return BoundingRange(ranges...)
}
