package marina

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxTagLen is the longest trailer tag kept, in bytes.
const MaxTagLen = 15

// Kind is the storage arrangement a boat occupies.
type Kind int

const (
	// Slip is a wet slip, identified by a number.
	Slip Kind = iota
	// Land is an on-land bay, identified by a letter.
	Land
	// Trailer is a trailer, identified by its license tag.
	Trailer
	// Storage is a storage yard space, identified by a number.
	Storage
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{Slip, Land, Trailer, Storage}

// String returns the persisted name of the kind.
//
// Trailer is spelled "trailor": files written by older versions use it and it must round-trip.
func (k Kind) String() string {
	switch k {
	case Slip:
		return "slip"
	case Land:
		return "land"
	case Trailer:
		return "trailor"
	case Storage:
		return "storage"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name, ignoring case.
// Any unknown name is read as Storage, which is what older versions did.
func ParseKind(s string) Kind {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k
		}
	}
	return Storage
}

// Location is the kind specific data of where a boat is kept.
//
// It is implemented by SlipLocation, LandLocation, TrailerLocation and StorageLocation only.
type Location interface {
	// Kind returns the kind this location belongs to.
	Kind() Kind
	// Value returns the text persisted in the location column.
	Value() string
	isLocation()
}

// SlipLocation is a wet slip.
type SlipLocation struct{ Number int }

// LandLocation is an on-land bay.
//
// The bay is a single byte, kept as read: files written by older tools may
// hold a Latin-1 letter that is not valid UTF-8.
type LandLocation struct{ Bay byte }

// TrailerLocation is a trailer identified by its tag.
type TrailerLocation struct{ Tag string }

// StorageLocation is a space in the storage yard.
type StorageLocation struct{ Number int }

func (SlipLocation) Kind() Kind    { return Slip }
func (LandLocation) Kind() Kind    { return Land }
func (TrailerLocation) Kind() Kind { return Trailer }
func (StorageLocation) Kind() Kind { return Storage }

func (l SlipLocation) Value() string    { return strconv.Itoa(l.Number) }
func (l LandLocation) Value() string    { return string([]byte{l.Bay}) }
func (l TrailerLocation) Value() string { return l.Tag }
func (l StorageLocation) Value() string { return strconv.Itoa(l.Number) }

func (SlipLocation) isLocation()    {}
func (LandLocation) isLocation()    {}
func (TrailerLocation) isLocation() {}
func (StorageLocation) isLocation() {}

// NewLocation returns the zero location of a kind.
func NewLocation(k Kind) Location {
	switch k {
	case Slip:
		return SlipLocation{}
	case Land:
		return LandLocation{}
	case Trailer:
		return TrailerLocation{}
	default:
		return StorageLocation{}
	}
}

// ParseLocation parses the location column for a given kind.
//
// Numbers are read like atoi: the leading digits count and anything else is 0.
// A land bay is the first byte of s and s must not be empty.
// A trailer tag longer than MaxTagLen is silently truncated.
func ParseLocation(k Kind, s string) (Location, error) {
	switch k {
	case Slip:
		return SlipLocation{Number: atoi(s)}, nil
	case Land:
		if s == "" {
			return nil, ErrEmptyBay
		}
		return LandLocation{Bay: s[0]}, nil
	case Trailer:
		return TrailerLocation{Tag: truncate(s, MaxTagLen)}, nil
	default:
		return StorageLocation{Number: atoi(s)}, nil
	}
}

// atoi reads the leading integer of s, skipping leading spaces. It returns 0 when there is none.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of range
		return 0
	}
	return n
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
