package marina

import "fmt"

// MaxNameLen is the longest boat name kept, in bytes.
const MaxNameLen = 127

// Boat is a boat kept at the marina and what its owner owes.
type Boat struct {
	Name     string // case insensitive key in an Inventory
	Length   Feet
	Location Location
	Owed     Money
}

// NewBoat creates a Boat. Names longer than MaxNameLen are truncated.
//
// A nil location is read as the zero storage space.
func NewBoat(name string, length Feet, loc Location, owed Money) Boat {
	if loc == nil {
		loc = StorageLocation{}
	}
	return Boat{
		Name:     truncate(name, MaxNameLen),
		Length:   length,
		Location: loc,
		Owed:     owed,
	}
}

// Kind returns the kind of the boat's location.
func (b Boat) Kind() Kind {
	if b.Location == nil {
		return Storage
	}
	return b.Location.Kind()
}

// Equal reports whether both boats have exactly the same fields.
func (b Boat) Equal(c Boat) bool {
	return b.Name == c.Name &&
		b.Length.Equal(c.Length) &&
		b.Location == c.Location &&
		b.Owed.Equal(c.Owed)
}

// String returns a short human description, e.g. "Brandy (20', slip 121) owes $31.50".
func (b Boat) String() string {
	return fmt.Sprintf("%s (%s', %s %s) owes %s", b.Name, b.Length.Whole(), b.Kind(), b.Location.Value(), b.Owed)
}

func (b Boat) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", b.Name)
	w.Append("length", b.Length)
	w.Append("kind", b.Kind().String())
	w.Append("location", b.Location.Value())
	w.Append("owed", b.Owed)
	return w.MarshalJSON()
}
