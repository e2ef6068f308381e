package migrate

import (
	"strconv"
	"strings"
)

// Version is an ordered sequence of non-negative integers parsed from a
// dot-delimited string such as "1.0.4". Trailing zero components carry no
// meaning: "1.0" and "1.0.0" name the same version.
type Version struct {
	raw   string
	parts []int
}

// ParseVersion parses a dotted-numeric version string. Strings with empty
// or non-numeric segments are rejected with an InvalidVersionError.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, &InvalidVersionError{Raw: s}
	}

	segments := strings.Split(s, ".")
	parts := make([]int, 0, len(segments))
	for _, segment := range segments {
		n, err := strconv.ParseUint(segment, 10, 31)
		if err != nil {
			return Version{}, &InvalidVersionError{Raw: s}
		}
		parts = append(parts, int(n))
	}

	// "1.0" and "1.0.0" must compare equal, so the insignificant tail is
	// stripped once at parse time.
	for len(parts) > 0 && parts[len(parts)-1] == 0 {
		parts = parts[:len(parts)-1]
	}

	return Version{raw: s, parts: parts}, nil
}

// MustParseVersion is ParseVersion for version literals known to be valid.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1 when v orders before o, 1 when it orders after and 0
// when the two name the same version. Components are compared left to
// right, with missing components treated as zero.
func (v Version) Compare(o Version) int {
	n := max(len(v.parts), len(o.parts))
	for i := 0; i < n; i++ {
		a, b := v.component(i), o.component(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// Equal reports whether the two strings name the same version.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// String returns the version as it was originally written.
func (v Version) String() string {
	return v.raw
}

func (v Version) component(i int) int {
	if i < len(v.parts) {
		return v.parts[i]
	}
	return 0
}

// canonical is the trailing-zero-stripped form, used as a registry key so
// that every spelling of a version resolves to the same step.
func (v Version) canonical() string {
	if len(v.parts) == 0 {
		return "0"
	}
	segments := make([]string, len(v.parts))
	for i, p := range v.parts {
		segments[i] = strconv.Itoa(p)
	}
	return strings.Join(segments, ".")
}
