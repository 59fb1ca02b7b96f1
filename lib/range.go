package ckan

import (
	"fmt"
	"strings"
)

// GameVersionRange is an immutable interval of game versions delimited
// by a lower and an upper GameVersionBound. Nothing prevents
// constructing a range whose lower bound sits above its upper bound;
// the behavior of such a range is undefined, and none of the
// constructors in this package produce one.
type GameVersionRange struct {
	Lower GameVersionBound
	Upper GameVersionBound

	str string
}

// AnyVersionRange covers every version. Treat it as a constant.
var AnyVersionRange = NewGameVersionRange(GameVersionBound{}, GameVersionBound{})

// NewGameVersionRange returns the range between the two bounds. The
// display string is computed once here.
func NewGameVersionRange(lower, upper GameVersionBound) *GameVersionRange {
	r := &GameVersionRange{Lower: lower, Upper: upper}
	r.str = r.format()
	return r
}

// RangeFromVersions returns the bounding interval of the implied ranges
// of the given versions. Returns ErrNoVersions when the list is empty
// and ErrNilVersion when it contains a nil entry.
func RangeFromVersions(versions ...*GameVersion) (*GameVersionRange, error) {
	if len(versions) == 0 {
		return nil, ErrNoVersions
	}
	ranges := make([]*GameVersionRange, 0, len(versions))
	for _, ver := range versions {
		if ver == nil {
			return nil, ErrNilVersion
		}
		ranges = append(ranges, ver.ToVersionRange())
	}
	return BoundingRange(ranges...)
}

// BoundingRange reduces one or more ranges to the smallest single
// interval covering all of them. This is a convex hull, not a set
// union: gaps between disjoint inputs end up inside the result. At
// equal bound values an inclusive bound wins over an exclusive one,
// and an absent bound always wins. Returns ErrNoVersions when the list
// is empty and ErrNilVersion when it contains a nil entry.
func BoundingRange(ranges ...*GameVersionRange) (*GameVersionRange, error) {
	if len(ranges) == 0 {
		return nil, ErrNoVersions
	}
	if ranges[0] == nil {
		return nil, ErrNilVersion
	}
	lower := ranges[0].Lower
	upper := ranges[0].Upper
	for _, r := range ranges {
		if r == nil {
			return nil, ErrNilVersion
		}
		if lowerWins(r.Lower, lower) {
			lower = r.Lower
		}
		if upperWins(r.Upper, upper) {
			upper = r.Upper
		}
	}
	return NewGameVersionRange(lower, upper), nil
}

// lowerWins reports whether candidate extends the interval further down
// than the tracked lower bound.
func lowerWins(candidate, tracked GameVersionBound) bool {
	if tracked.Unbounded() {
		return false
	}
	if candidate.Unbounded() {
		return true
	}
	switch cmp := candidate.Value.Compare(tracked.Value); {
	case cmp < 0:
		return true
	case cmp > 0:
		return false
	default:
		return candidate.Inclusive && !tracked.Inclusive
	}
}

// upperWins reports whether candidate extends the interval further up
// than the tracked upper bound.
func upperWins(candidate, tracked GameVersionBound) bool {
	if tracked.Unbounded() {
		return false
	}
	if candidate.Unbounded() {
		return true
	}
	switch cmp := candidate.Value.Compare(tracked.Value); {
	case cmp > 0:
		return true
	case cmp < 0:
		return false
	default:
		return candidate.Inclusive && !tracked.Inclusive
	}
}

// IsSupersetOf reports whether this range entirely contains other. A
// side with an absent bound contains anything on that side; at equal
// bound values containment holds when this side is inclusive or the
// other side is exclusive. Every range is a superset of itself. A nil
// other is not contained.
func (r *GameVersionRange) IsSupersetOf(other *GameVersionRange) bool {
	if other == nil {
		return false
	}

	lowerOk := false
	switch {
	case r.Lower.Unbounded():
		lowerOk = true
	case other.Lower.Unbounded():
		lowerOk = false
	default:
		cmp := other.Lower.Value.Compare(r.Lower.Value)
		lowerOk = cmp > 0 || (cmp == 0 && (r.Lower.Inclusive || !other.Lower.Inclusive))
	}
	if !lowerOk {
		return false
	}

	switch {
	case r.Upper.Unbounded():
		return true
	case other.Upper.Unbounded():
		return false
	default:
		cmp := other.Upper.Value.Compare(r.Upper.Value)
		return cmp < 0 || (cmp == 0 && (r.Upper.Inclusive || !other.Upper.Inclusive))
	}
}

// Contains reports whether the range contains the single given version,
// i.e. whether it is a superset of the version's implied range.
func (r *GameVersionRange) Contains(ver *GameVersion) bool {
	if ver == nil {
		return false
	}
	return r.IsSupersetOf(ver.ToVersionRange())
}

// String returns the range in interval notation: "[1.2.0.0,1.3.0.0)".
// An absent bound renders as an empty value with a round bracket, so
// the unbounded range is "(,)".
func (r *GameVersionRange) String() string {
	return r.str
}

func (r *GameVersionRange) format() string {
	var sb strings.Builder
	if r.Lower.Inclusive && !r.Lower.Unbounded() {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	if !r.Lower.Unbounded() {
		sb.WriteString(r.Lower.Value.String())
	}
	sb.WriteByte(',')
	if !r.Upper.Unbounded() {
		sb.WriteString(r.Upper.Value.String())
	}
	if r.Upper.Inclusive && !r.Upper.Unbounded() {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}

// ParseGameVersionRange parses the interval notation produced by
// String. Each side is either empty (absent bound) or a dotted version.
func ParseGameVersionRange(input string) (*GameVersionRange, error) {
	input = strings.TrimSpace(input)
	if len(input) < 3 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, input)
	}

	var lower, upper GameVersionBound
	switch input[0] {
	case '[':
		lower.Inclusive = true
	case '(':
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, input)
	}
	switch input[len(input)-1] {
	case ']':
		upper.Inclusive = true
	case ')':
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, input)
	}

	inner := input[1 : len(input)-1]
	lowerStr, upperStr, found := strings.Cut(inner, ",")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, input)
	}
	if strings.TrimSpace(lowerStr) != "" {
		ver, err := ParseGameVersion(lowerStr)
		if err != nil {
			return nil, err
		}
		lower.Value = ver
	} else {
		lower.Inclusive = false
	}
	if strings.TrimSpace(upperStr) != "" {
		ver, err := ParseGameVersion(upperStr)
		if err != nil {
			return nil, err
		}
		upper.Value = ver
	} else {
		upper.Inclusive = false
	}

	return NewGameVersionRange(lower, upper), nil
}
