package marina

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// LoadFile reads the inventory file at path.
//
// If the file cannot be opened or read, the error wraps ErrIO and no boats
// are returned. Otherwise it returns the boats that could be parsed, in file
// order, and possibly the lines that were skipped joined in the error, each
// as a *LineError wrapping ErrMalformedLine.
func LoadFile(path string) ([]Boat, error) {
	lines, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines)
}

// readFile returns the lines of the file at path. Errors wrap ErrIO.
func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %q: %w", ErrIO, path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read %q: %w", ErrIO, path, err)
	}
	return lines, nil
}

// SaveFile writes boats to the inventory file at path, replacing its content.
//
// The boats are first written to a temporary file in the same folder that is
// then renamed, so a failed save leaves the previous file untouched. An
// existing file keeps its permissions. Errors wrap ErrIO.
func SaveFile(path string, boats []Boat) error {
	t, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("%w: could not open %q for writing: %w", ErrIO, path, err)
	}
	defer t.Cleanup()

	if err := EncodeBoats(t, boats); err != nil {
		return fmt.Errorf("%w: could not write %q: %w", ErrIO, path, err)
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: could not replace %q: %w", ErrIO, path, err)
	}
	return nil
}

// OpenInventory loads the inventory file at path into a new Inventory.
//
// An error wrapping ErrIO is fatal and comes with a nil Inventory. Any other
// error reports skipped lines: the Inventory is usable and holds every boat
// that could be read.
func OpenInventory(path string, opts ...Option) (*Inventory, error) {
	lines, err := readFile(path)
	if err != nil {
		return nil, err
	}
	inv := NewInventory(opts...)
	if err := inv.Load(lines); err != nil {
		return inv, fmt.Errorf("some lines of %q were skipped: %w", path, err)
	}
	return inv, nil
}

// SaveInventory writes inv to the inventory file at path, in sorted order.
func SaveInventory(path string, inv *Inventory) error {
	return SaveFile(path, inv.Boats())
}

// IsFatal reports whether err prevents using the inventory at all.
func IsFatal(err error) bool {
	return errors.Is(err, ErrIO)
}
