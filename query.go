package marina

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// MarshalJSON encodes the inventory as a JSON array of boats in sorted order.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.boats)
}

// Document returns the inventory as a generic JSON document, the way
// encoding/json decodes it into an interface{}.
func (inv *Inventory) Document() (any, error) {
	raw, err := json.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("could not encode inventory: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("could not decode inventory: %w", err)
	}
	return doc, nil
}

// Query evaluates a JSONPath expression against the inventory document.
//
// The document is an array of boats, each an object with "name", "length",
// "kind", "location" and "owed" ({"currency","amount"}) members, e.g.
//
//	$[?(@.owed.amount > 100)].name
func (inv *Inventory) Query(expr string) (any, error) {
	doc, err := inv.Document()
	if err != nil {
		return nil, err
	}
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return v, nil
}
