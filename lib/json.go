package ckan

import (
	"encoding/json"
	"strings"
)

// anyToken is the reserved word that persisted configuration uses for a
// fully undefined version. It is not valid input to ParseGameVersion.
const anyToken = "any"

// VersionCodec translates game versions to and from their persisted
// textual form. The persistence layer picks the implementation; the
// rest of this package only ever goes through DefaultVersionCodec.
type VersionCodec interface {
	EncodeVersion(ver *GameVersion) string
	DecodeVersion(input string) (*GameVersion, error)
}

// DefaultVersionCodec writes the canonical dotted form and understands
// the "any" token on the way back in.
var DefaultVersionCodec VersionCodec = textVersionCodec{}

type textVersionCodec struct{}

func (textVersionCodec) EncodeVersion(ver *GameVersion) string {
	if ver == nil {
		return ""
	}
	return ver.String()
}

func (textVersionCodec) DecodeVersion(input string) (*GameVersion, error) {
	if strings.EqualFold(strings.TrimSpace(input), anyToken) {
		return emptyVersion(), nil
	}
	return ParseGameVersion(input)
}

func (v *GameVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal(DefaultVersionCodec.EncodeVersion(v))
}

func (v *GameVersion) UnmarshalJSON(data []byte) error {
	// A JSON null leaves the version untouched; pointer fields simply
	// stay nil.
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ver, err := DefaultVersionCodec.DecodeVersion(s)
	if err != nil {
		return err
	}
	v.parts = ver.parts
	return nil
}
