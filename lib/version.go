package ckan

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// undefined is the internal sentinel for a version slot that was never
// specified. It sorts below every real component, including 0. It never
// leaks through the public API.
const undefined = -1

// maxComponent is the largest value a single component may hold.
const maxComponent = math.MaxInt32

// GameVersion is an immutable game version with up to four components,
// major.minor.patch.build. Trailing components may be left undefined:
// "1.2" has two defined components and is a different version than
// "1.2.0". Construct one with NewGameVersion or ParseGameVersion.
type GameVersion struct {
	parts [4]int
}

// NewGameVersion returns a version from 0-4 explicit components, in
// major, minor, patch, build order. Components not supplied are left
// undefined. Returns ErrVersionOutOfRange if any component is negative
// or does not fit in 32 bits, ErrTooManyComponents if more than four
// are given.
func NewGameVersion(components ...int) (*GameVersion, error) {
	if len(components) > 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyComponents, len(components))
	}
	ver := emptyVersion()
	for i, component := range components {
		if component < 0 || component > maxComponent {
			return nil, fmt.Errorf("%w: %d", ErrVersionOutOfRange, component)
		}
		ver.parts[i] = component
	}
	return ver, nil
}

// ParseGameVersion parses a dotted version string. The input is trimmed
// first; an empty or whitespace-only string parses to the fully
// undefined version. Each component must be a base-10 integer in
// [0, 2^31-1]; at most four components are allowed.
func ParseGameVersion(input string) (*GameVersion, error) {
	ver := emptyVersion()
	input = strings.TrimSpace(input)
	if input == "" {
		return ver, nil
	}
	parts := strings.Split(input, ".")
	if len(parts) > 4 {
		return nil, fmt.Errorf("%w: %q", ErrTooManyComponents, input)
	}
	for i, part := range parts {
		component, err := strconv.Atoi(part)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("%w: %q", ErrTooLargeComponent, part)
			}
			return nil, fmt.Errorf("%w: %q", ErrNonIntegerComponent, part)
		}
		if component < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNegativeComponent, part)
		}
		if component > maxComponent {
			return nil, fmt.Errorf("%w: %q", ErrTooLargeComponent, part)
		}
		ver.parts[i] = component
	}
	return ver, nil
}

// TryParseGameVersion is the non-failing variant of ParseGameVersion.
// Unlike ParseGameVersion, an empty string is a failure here. On
// failure the returned version is fully undefined and ok is false.
func TryParseGameVersion(input string) (ver *GameVersion, ok bool) {
	if strings.TrimSpace(input) == "" {
		return emptyVersion(), false
	}
	ver, err := ParseGameVersion(input)
	if err != nil {
		return emptyVersion(), false
	}
	return ver, true
}

// MustParseGameVersion is like ParseGameVersion but panics on error.
// Intended for constants and tests.
func MustParseGameVersion(input string) *GameVersion {
	ver, err := ParseGameVersion(input)
	if err != nil {
		panic(err)
	}
	return ver
}

func emptyVersion() *GameVersion {
	return &GameVersion{parts: [4]int{undefined, undefined, undefined, undefined}}
}

// Precision returns the number of leading defined components, 0-4.
// Definedness is always a contiguous prefix.
func (v *GameVersion) Precision() int {
	for i, part := range v.parts {
		if part == undefined {
			return i
		}
	}
	return len(v.parts)
}

func (v *GameVersion) component(i int) (int, bool) {
	if v.parts[i] == undefined {
		return 0, false
	}
	return v.parts[i], true
}

// Major returns the first component, or false if it is undefined.
func (v *GameVersion) Major() (int, bool) { return v.component(0) }

// Minor returns the second component, or false if it is undefined.
func (v *GameVersion) Minor() (int, bool) { return v.component(1) }

// Patch returns the third component, or false if it is undefined.
func (v *GameVersion) Patch() (int, bool) { return v.component(2) }

// Build returns the fourth component, or false if it is undefined.
func (v *GameVersion) Build() (int, bool) { return v.component(3) }

// String returns the defined components joined with dots. The fully
// undefined version formats as the empty string.
func (v *GameVersion) String() string {
	var sb strings.Builder
	for i, part := range v.parts {
		if part == undefined {
			break
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(part))
	}
	return sb.String()
}

// Equals reports whether both versions have identical components,
// including which ones are undefined: "1.2" does not equal "1.2.0".
// A nil other is never equal.
func (v *GameVersion) Equals(other *GameVersion) bool {
	if other == nil {
		return false
	}
	return v.parts == other.parts
}

// Compare orders versions lexicographically by component and returns
// -1, 0, or 1. An undefined component sorts below every defined one,
// so "1.2" < "1.2.0" < "1.2.1". A nil other is treated as the fully
// undefined version.
func (v *GameVersion) Compare(other *GameVersion) int {
	if other == nil {
		other = emptyVersion()
	}
	for i := range v.parts {
		if v.parts[i] < other.parts[i] {
			return -1
		}
		if v.parts[i] > other.parts[i] {
			return 1
		}
	}
	return 0
}

// ToVersionRange widens a version into the interval of all versions
// that refine its undefined components. "1.2" becomes
// [1.2.0.0, 1.3.0.0), a fully defined version becomes the degenerate
// closed interval around itself, and the fully undefined version
// becomes the unbounded range.
func (v *GameVersion) ToVersionRange() *GameVersionRange {
	precision := v.Precision()
	if precision == 0 {
		return AnyVersionRange
	}
	if precision == 4 {
		return NewGameVersionRange(
			GameVersionBound{Value: v, Inclusive: true},
			GameVersionBound{Value: v, Inclusive: true},
		)
	}

	var lower, upper GameVersion
	for i := 0; i < precision; i++ {
		lower.parts[i] = v.parts[i]
		upper.parts[i] = v.parts[i]
	}
	upper.parts[precision-1]++
	return NewGameVersionRange(
		GameVersionBound{Value: &lower, Inclusive: true},
		GameVersionBound{Value: &upper, Inclusive: false},
	)
}
