package marina

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"
)

// DefaultCapacity is how many boats the marina can hold.
const DefaultCapacity = 120

// Inventory represents the boats kept at the marina.
//
// In an Inventory boats are always sorted by name, ignoring case. Boats with
// the same name keep the order they were inserted in.
//
// An Inventory is not safe for concurrent use.
type Inventory struct {
	boats    []Boat
	capacity int
	currency string
	rates    Rates
	log      *zap.Logger
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithCapacity sets the maximum number of boats. A negative n is read as 0.
func WithCapacity(n int) Option {
	return func(inv *Inventory) { inv.capacity = max(n, 0) }
}

// WithCurrency sets the currency balances are kept in.
func WithCurrency(currency string) Option {
	return func(inv *Inventory) { inv.currency = currency }
}

// WithRates sets the monthly rates.
func WithRates(r Rates) Option {
	return func(inv *Inventory) { inv.rates = r }
}

// WithLogger sets the logger used to trace changes and report skipped lines.
func WithLogger(l *zap.Logger) Option {
	return func(inv *Inventory) { inv.log = l }
}

// NewInventory creates an empty inventory.
func NewInventory(opts ...Option) *Inventory {
	inv := &Inventory{
		capacity: DefaultCapacity,
		currency: DefaultCurrency,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	if inv.rates == nil {
		inv.rates = DefaultRates(inv.currency)
	}
	if inv.log == nil {
		inv.log = zap.NewNop()
	}
	inv.capacity = max(inv.capacity, 0)
	inv.boats = make([]Boat, 0, min(inv.capacity, DefaultCapacity))
	return inv
}

// Len returns the number of boats.
func (inv *Inventory) Len() int { return len(inv.boats) }

// Cap returns the maximum number of boats.
func (inv *Inventory) Cap() int { return inv.capacity }

// Currency returns the currency balances are kept in.
func (inv *Inventory) Currency() string { return inv.currency }

// Rates returns the monthly rates.
func (inv *Inventory) Rates() Rates { return inv.rates }

// compareNames orders names ignoring case, like strcasecmp.
func compareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Insert adds a boat at its sorted position, after any boat with the same name.
//
// It returns ErrCapacityExceeded if the marina is full, in which case the boat is not kept.
func (inv *Inventory) Insert(b Boat) error {
	if len(inv.boats) >= inv.capacity {
		return fmt.Errorf("cannot add %q: %w (%d boats)", b.Name, ErrCapacityExceeded, inv.capacity)
	}
	b = NewBoat(b.Name, b.Length, b.Location, b.Owed.In(inv.currency))

	// Walk back from the end while the name is strictly greater, the way an insertion sort does.
	i := len(inv.boats)
	for i > 0 && compareNames(inv.boats[i-1].Name, b.Name) > 0 {
		i--
	}
	inv.boats = append(inv.boats, Boat{})
	copy(inv.boats[i+1:], inv.boats[i:])
	inv.boats[i] = b

	inv.log.Debug("boat added", zap.String("name", b.Name), zap.Int("index", i))
	return nil
}

// Find returns the index of the first boat named name, ignoring case.
//
// Boats are sorted so the first match is the first boat inserted with that name.
func (inv *Inventory) Find(name string) (int, error) {
	// The legacy scale is a hundred boats or so, a linear scan is fine.
	for i, b := range inv.boats {
		if strings.EqualFold(b.Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Boat returns a copy of the first boat named name.
func (inv *Inventory) Boat(name string) (Boat, error) {
	i, err := inv.Find(name)
	if err != nil {
		return Boat{}, err
	}
	return inv.boats[i], nil
}

// At returns the boat at index i in sorted order.
func (inv *Inventory) At(i int) Boat { return inv.boats[i] }

// Remove removes the first boat named name.
func (inv *Inventory) Remove(name string) error {
	i, err := inv.Find(name)
	if err != nil {
		return err
	}
	removed := inv.boats[i]
	copy(inv.boats[i:], inv.boats[i+1:])
	inv.boats[len(inv.boats)-1] = Boat{}
	inv.boats = inv.boats[:len(inv.boats)-1]

	inv.log.Debug("boat removed", zap.String("name", removed.Name), zap.Int("index", i))
	return nil
}

// AcceptPayment subtracts amount from what the boat named name owes.
//
// It returns ErrOverPayment if amount is greater than the amount owed. Paying
// exactly the amount owed brings the balance to zero.
func (inv *Inventory) AcceptPayment(name string, amount Money) error {
	i, err := inv.Find(name)
	if err != nil {
		return err
	}
	b := &inv.boats[i]
	amount = amount.In(inv.currency)
	if amount.GreaterThan(b.Owed) {
		return fmt.Errorf("%w: %s pays %s but owes %s", ErrOverPayment, b.Name, amount, b.Owed)
	}
	b.Owed = b.Owed.Sub(amount)

	inv.log.Debug("payment accepted",
		zap.String("name", b.Name),
		zap.String("amount", amount.Fixed()),
		zap.String("owed", b.Owed.Fixed()))
	return nil
}

// AdvanceMonth charges every boat one month: its length times the rate of its kind.
func (inv *Inventory) AdvanceMonth() {
	for i := range inv.boats {
		b := &inv.boats[i]
		b.Owed = b.Owed.Add(inv.rates.Accrual(*b).In(inv.currency))
	}
	inv.log.Debug("month advanced", zap.Int("boats", len(inv.boats)))
}

// TotalOwed returns the sum of all balances.
func (inv *Inventory) TotalOwed() Money {
	total := M(0, inv.currency)
	for _, b := range inv.boats {
		total = total.Add(b.Owed)
	}
	return total
}

// All returns an iterator over the boats in sorted order.
func (inv *Inventory) All() iter.Seq2[int, Boat] {
	return func(yield func(int, Boat) bool) {
		for i, b := range inv.boats {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Boats returns a copy of the boats in sorted order.
func (inv *Inventory) Boats() []Boat {
	boats := make([]Boat, len(inv.boats))
	copy(boats, inv.boats)
	return boats
}

// Load replaces the inventory content with the boats parsed from lines.
//
// Lines that cannot be parsed, or that do not fit in the marina, are skipped.
// They are logged and returned joined in the error, each as a *LineError.
// The error is not fatal: the inventory holds every boat that could be read.
func (inv *Inventory) Load(lines []string) error {
	inv.boats = inv.boats[:0]

	var errs []error
	for n, line := range lines {
		line = trimEOL(line)
		if line == "" {
			continue
		}
		b, err := ParseLine(line)
		if err == nil {
			err = inv.Insert(b)
		}
		if err != nil {
			lerr := &LineError{Line: n + 1, Text: line, Err: err}
			inv.log.Warn("skipped line", zap.Int("line", lerr.Line), zap.String("text", line), zap.Error(err))
			errs = append(errs, lerr)
		}
	}
	return errors.Join(errs...)
}

// InsertAll inserts all boats, or none if they do not all fit.
func (inv *Inventory) InsertAll(boats ...Boat) error {
	if len(inv.boats)+len(boats) > inv.capacity {
		return fmt.Errorf("cannot add %d boats: %w (%d boats)", len(boats), ErrCapacityExceeded, inv.capacity)
	}
	for _, b := range boats {
		if err := inv.Insert(b); err != nil {
			return err
		}
	}
	return nil
}
