package ckan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGameVersion(t *testing.T) {
	tests := []struct {
		input     string
		output    string
		precision int
	}{
		{"", "", 0},
		{"   ", "", 0},
		{"1", "1", 1},
		{"1.2", "1.2", 2},
		{"1.2.3", "1.2.3", 3},
		{"1.2.3.4", "1.2.3.4", 4},
		{" 1.12.3 ", "1.12.3", 3},
		{"0.0.0.0", "0.0.0.0", 4},
		{"010.001.0100.0000001", "10.1.100.1", 4},
		{"2147483647", "2147483647", 1},
	}
	for _, test := range tests {
		ver, err := ParseGameVersion(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		if ver.String() != test.output {
			t.Error("version string mismatch:", test.input, ver.String())
		}
		if ver.Precision() != test.precision {
			t.Error("version precision mismatch:", test.input, ver.Precision())
		}
	}
}

func TestParseGameVersionErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"1.2.3.4.5", ErrTooManyComponents},
		{"1.x", ErrNonIntegerComponent},
		{"one", ErrNonIntegerComponent},
		{"1..2", ErrNonIntegerComponent},
		{"-1", ErrNegativeComponent},
		{"1.2.-3", ErrNegativeComponent},
		{"2147483648", ErrTooLargeComponent},
		{"99999999999", ErrTooLargeComponent},
		{"99999999999999999999999999", ErrTooLargeComponent},
	}
	for _, test := range tests {
		_, err := ParseGameVersion(test.input)
		require.ErrorIs(t, err, test.err, test.input)
	}
}

func TestNewGameVersion(t *testing.T) {
	ver, err := NewGameVersion(1, 2)
	require.NoError(t, err)
	require.Equal(t, "1.2", ver.String())
	require.Equal(t, 2, ver.Precision())

	major, ok := ver.Major()
	require.True(t, ok)
	require.Equal(t, 1, major)
	_, ok = ver.Patch()
	require.False(t, ok)

	ver, err = NewGameVersion()
	require.NoError(t, err)
	require.Equal(t, "", ver.String())
	require.Equal(t, 0, ver.Precision())

	_, err = NewGameVersion(1, -2)
	require.ErrorIs(t, err, ErrVersionOutOfRange)
	_, err = NewGameVersion(1, 2, 3, 4, 5)
	require.ErrorIs(t, err, ErrTooManyComponents)
}

func TestTryParseGameVersion(t *testing.T) {
	ver, ok := TryParseGameVersion("1.2.3")
	require.True(t, ok)
	require.Equal(t, "1.2.3", ver.String())

	// The throwing parser accepts an empty string as the fully
	// undefined version; TryParse rejects it outright.
	ver, ok = TryParseGameVersion("")
	require.False(t, ok)
	require.Equal(t, 0, ver.Precision())
	_, ok = TryParseGameVersion("   ")
	require.False(t, ok)

	ver, ok = TryParseGameVersion("1.2.x")
	require.False(t, ok)
	require.Equal(t, 0, ver.Precision())
}

func TestGameVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		res  int
	}{
		{"1.2", "1.2", 0},
		{"1.2", "1.2.0", -1},
		{"1.2.0", "1.2.1", -1},
		{"1.2.3.4", "1.2.4", -1},
		{"2", "1.9.9.9", 1},
		{"", "0", -1},
		{"", "", 0},
		{"1.0.0.0", "1", 1},
	}
	for _, test := range tests {
		a := MustParseGameVersion(test.a)
		b := MustParseGameVersion(test.b)
		if res := a.Compare(b); res != test.res {
			t.Error("version comparison failure:", test.a, test.b, res)
		}
		if res := b.Compare(a); res != -test.res {
			t.Error("version comparison is not antisymmetric:", test.b, test.a, res)
		}
	}
}

func TestGameVersionEquals(t *testing.T) {
	require.True(t, MustParseGameVersion("1.2").Equals(MustParseGameVersion("1.2")))
	require.False(t, MustParseGameVersion("1.2").Equals(MustParseGameVersion("1.2.0")))
	require.False(t, MustParseGameVersion("1.2").Equals(nil))
	require.True(t, MustParseGameVersion("").Equals(MustParseGameVersion("  ")))
}

func TestToVersionRange(t *testing.T) {
	tests := []struct {
		input  string
		output string
	}{
		{"", "(,)"},
		{"1", "[1.0.0.0,2.0.0.0)"},
		{"1.2", "[1.2.0.0,1.3.0.0)"},
		{"1.2.3", "[1.2.3.0,1.2.4.0)"},
		{"1.2.3.4", "[1.2.3.4,1.2.3.4]"},
		{"0", "[0.0.0.0,1.0.0.0)"},
	}
	for _, test := range tests {
		r := MustParseGameVersion(test.input).ToVersionRange()
		if r.String() != test.output {
			t.Error("implied range mismatch:", test.input, r.String())
		}
	}
}
