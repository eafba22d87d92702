package resource

import (
	"strconv"
	"strings"
)

// zeroVersion ranks below any well-formed version.
var zeroVersion = Version{0, 0, 0}

// Version is a parsed dotted version, compared element-wise.
type Version []int

// ParseVersion parses a dotted numeric version string ("3.0.0") into a
// Version. Any malformed input yields the zero version (0,0,0).
func ParseVersion(s string) Version {
	if s == "" {
		return zeroVersion
	}
	parts := strings.Split(s, ".")
	v := make(Version, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return zeroVersion
		}
		v[i] = n
	}
	return v
}

// Compare returns -1, 0, or 1 as v sorts before, equal to, or after other.
// Shorter versions sort before longer ones when the shared prefix is equal,
// so "1.0" < "1.0.0".
func (v Version) Compare(other Version) int {
	for i := 0; i < len(v) && i < len(other); i++ {
		switch {
		case v[i] < other[i]:
			return -1
		case v[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(v) < len(other):
		return -1
	case len(v) > len(other):
		return 1
	}
	return 0
}

// Less reports whether v sorts strictly before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }
