package ckan

// GameVersionBound is one edge of a version interval: an optional
// version plus an inclusive flag. A nil Value makes the bound absent,
// meaning negative infinity when used as a lower bound and positive
// infinity as an upper bound; the Inclusive flag is ignored for absent
// bounds. The zero value is an absent bound.
type GameVersionBound struct {
	Value     *GameVersion
	Inclusive bool
}

// InclusiveBound returns a bound that includes ver itself.
func InclusiveBound(ver *GameVersion) GameVersionBound {
	return GameVersionBound{Value: ver, Inclusive: true}
}

// ExclusiveBound returns a bound that excludes ver itself.
func ExclusiveBound(ver *GameVersion) GameVersionBound {
	return GameVersionBound{Value: ver, Inclusive: false}
}

// Unbounded reports whether the bound has no value.
func (b GameVersionBound) Unbounded() bool {
	return b.Value == nil
}
