package core

import (
	"fmt"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// MinecraftVersion is a version of the game in one of the three
// shapes Mojang has shipped over the years: a (mostly) semantic
// version like "1.20.1", a snapshot like "18w10d", or something
// neither of those ("22w13oneblockatatime" and similar one-offs).
//
// The original string is always preserved, so rendering a parsed
// version round-trips exactly; the parsed forms only add meaning.
type MinecraftVersion struct {
	raw      string
	semantic *semver.Version
	snapshot *Snapshot
}

// ParseMinecraftVersion classifies a raw version string. It never
// fails: an unrecognized shape still yields a usable opaque version.
func ParseMinecraftVersion(raw string) MinecraftVersion {
	version := MinecraftVersion{raw: raw}

	if parsed, err := semver.StrictNewVersion(raw); err == nil {
		version.semantic = parsed
		return version
	}
	// Two-part versions like "1.17" are valid game versions but not
	// strict semver; normalize with an implied zero patch.
	if parsed, err := semver.StrictNewVersion(raw + ".0"); err == nil {
		version.semantic = parsed
		return version
	}
	if snapshot, err := ParseSnapshot(raw); err == nil {
		version.snapshot = &snapshot
		return version
	}

	return version
}

func (v MinecraftVersion) String() string {
	return v.raw
}

func (v MinecraftVersion) IsSemantic() bool {
	return v.semantic != nil
}

func (v MinecraftVersion) IsSnapshot() bool {
	return v.snapshot != nil
}

// Semantic returns the parsed semantic form, if there is one.
func (v MinecraftVersion) Semantic() (*semver.Version, bool) {
	return v.semantic, v.semantic != nil
}

func (v MinecraftVersion) Snapshot() (Snapshot, bool) {
	if v.snapshot == nil {
		return Snapshot{}, false
	}
	return *v.snapshot, true
}

func (v MinecraftVersion) MarshalYAML() (interface{}, error) {
	return v.raw, nil
}

func (v *MinecraftVersion) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*v = ParseMinecraftVersion(raw)
	return nil
}

// Snapshot is a development version in Mojang's "YYwWWn" convention:
// two-digit year, literal 'w', two-digit week, one letter.
type Snapshot struct {
	Year       int
	Week       int
	Identifier byte
}

const snapshotLength = len("YYwWWn")

func ParseSnapshot(raw string) (Snapshot, error) {
	if len(raw) != snapshotLength {
		return Snapshot{}, fmt.Errorf("snapshot %q is %d chars long, want %d", raw, len(raw), snapshotLength)
	}
	if raw[2] != 'w' {
		return Snapshot{}, fmt.Errorf("snapshot %q has no week marker", raw)
	}
	year, err := strconv.Atoi(raw[0:2])
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot %q: %w", raw, err)
	}
	week, err := strconv.Atoi(raw[3:5])
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot %q: %w", raw, err)
	}
	identifier := raw[snapshotLength-1]
	if identifier < 'a' || identifier > 'z' {
		return Snapshot{}, fmt.Errorf("snapshot %q has an invalid identifier", raw)
	}
	return Snapshot{Year: year, Week: week, Identifier: identifier}, nil
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%02dw%02d%c", s.Year, s.Week, s.Identifier)
}
