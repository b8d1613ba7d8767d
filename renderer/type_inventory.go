package renderer

import (
	"fmt"

	"github.com/etnz/marina"
)

// Inventory is the data of an inventory report.
type Inventory struct {
	// Title of the report.
	Title string `json:"title"`
	// Boats in sorted order.
	Boats []InventoryBoat `json:"boats"`
	// Capacity is the maximum number of boats.
	Capacity int `json:"capacity"`
	// TotalOwed is the sum of all balances.
	TotalOwed marina.Money `json:"totalOwed"`
}

// InventoryBoat is one row of the inventory report.
type InventoryBoat struct {
	Name   string       `json:"name"`
	Length string       `json:"length"` // whole feet
	Where  string       `json:"where"`
	Owed   marina.Money `json:"owed"`
}

// NewInventory builds the report data of inv.
func NewInventory(title string, inv *marina.Inventory) *Inventory {
	r := &Inventory{
		Title:     title,
		Boats:     make([]InventoryBoat, 0, inv.Len()),
		Capacity:  inv.Cap(),
		TotalOwed: inv.TotalOwed(),
	}
	for _, b := range inv.All() {
		r.Boats = append(r.Boats, InventoryBoat{
			Name:   b.Name,
			Length: b.Length.Whole(),
			Where:  Where(b.Location),
			Owed:   b.Owed,
		})
	}
	return r
}

// Count returns the number of boats.
func (r *Inventory) Count() int { return len(r.Boats) }

// Free returns the number of places left.
func (r *Inventory) Free() int { return r.Capacity - len(r.Boats) }

// Where describes a location, e.g. "slip #121" or "land bay C".
func Where(loc marina.Location) string {
	switch l := loc.(type) {
	case marina.SlipLocation:
		return fmt.Sprintf("slip #%d", l.Number)
	case marina.LandLocation:
		return fmt.Sprintf("land bay %s", l.Value())
	case marina.TrailerLocation:
		return fmt.Sprintf("trailer %s", l.Tag)
	case marina.StorageLocation:
		return fmt.Sprintf("storage #%d", l.Number)
	default:
		return "unknown"
	}
}
