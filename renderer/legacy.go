package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/marina"
)

// Legacy writes the inventory in the fixed width layout of the interactive
// shell, one boat per line:
//
//	Brandy                 20'    slip   # 121   Owes $  31.50
func Legacy(w io.Writer, inv *marina.Inventory) error {
	for _, b := range inv.All() {
		if _, err := io.WriteString(w, LegacyLine(b)); err != nil {
			return err
		}
	}
	return nil
}

// LegacyLine formats one boat in the fixed width layout, terminator included.
func LegacyLine(b marina.Boat) string {
	var where string
	switch l := b.Location.(type) {
	case marina.SlipLocation:
		where = fmt.Sprintf("   slip   # %-3d", l.Number)
	case marina.LandLocation:
		where = fmt.Sprintf("   land      %s", l.Value())
	case marina.TrailerLocation:
		where = fmt.Sprintf(" trailor %s", l.Tag)
	case marina.StorageLocation:
		where = fmt.Sprintf("storage   # %-3d", l.Number)
	}
	return fmt.Sprintf("%-20s %4s' %s   Owes %s%7s\n", b.Name, b.Length.Whole(), where, b.Owed.Symbol(), b.Owed.Fixed())
}
