// Package carsales implements the showroom conversation flow: an ordered
// rule chain that walks a customer from first contact to a scheduled test
// drive, driven entirely by which facts are currently known.
//
// All helpers in this package expect a store built by NewStore. Handing
// them a store with a different schema is a programming error and panics.
package carsales

import (
	"fmt"
	"time"

	"verdict/pkg/facts"
)

// Customer intents.
const (
	IntentBuy  = "buy"
	IntentSell = "sell"
)

// Fact names understood by a showroom store.
const (
	FactIntent       = "intent"
	FactBudget       = "budget"
	FactCar          = "car"
	FactAvailability = "customer_available"
)

// Showroom staffing window. Test drives start on the hour.
const (
	openingHour = 9
	closingHour = 17
)

// Decls returns the showroom fact schema.
func Decls() []facts.Decl {
	return []facts.Decl{
		{Name: FactIntent, Types: []facts.Type{facts.String}, Singleton: true},
		{Name: FactBudget, Types: []facts.Type{facts.Int}, Singleton: true},
		{Name: FactCar, Types: []facts.Type{facts.String, facts.Int, facts.String, facts.String}},
		{Name: FactAvailability, Types: []facts.Type{facts.Int, facts.Int, facts.Int, facts.Int}},
	}
}

// NewStore builds an empty showroom fact store.
func NewStore() *facts.Store {
	s, err := facts.NewStore(Decls()...)
	if err != nil {
		panic(err) // schema is static
	}
	return s
}

// Car is one inventory entry, mirrored by the car fact.
type Car struct {
	ID    string
	Price int
	Make  string
	Model string
}

// Slot is a customer-proposed visit time.
type Slot struct {
	Year  int
	Month int
	Day   int
	Hour  int
}

// Weekday resolves the slot's day of week.
func (s Slot) Weekday() time.Weekday {
	return time.Date(s.Year, time.Month(s.Month), s.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// InShowroomHours reports whether staff can run a test drive at the slot:
// Monday to Friday, 09:00 through 16:00 starts.
func (s Slot) InShowroomHours() bool {
	wd := s.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return s.Hour >= openingHour && s.Hour < closingHour
}

// SetIntent asserts the customer's intent. A second, different intent is
// rejected by the store's singleton policy; use UpdateIntent to replace.
func SetIntent(s *facts.Store, intent string) error {
	if intent != IntentBuy && intent != IntentSell {
		return fmt.Errorf("carsales: unknown intent %q", intent)
	}
	return s.Assert(facts.New(FactIntent, intent))
}

// UpdateIntent replaces any previously stated intent.
func UpdateIntent(s *facts.Store, intent string) error {
	if intent != IntentBuy && intent != IntentSell {
		return fmt.Errorf("carsales: unknown intent %q", intent)
	}
	if _, err := s.Retract(FactIntent); err != nil {
		return err
	}
	return s.Assert(facts.New(FactIntent, intent))
}

// SetBudget asserts the customer's budget. A second, different budget is
// rejected; use UpdateBudget to replace.
func SetBudget(s *facts.Store, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("carsales: budget must be positive, got %d", amount)
	}
	return s.Assert(facts.New(FactBudget, amount))
}

// UpdateBudget replaces any previously stated budget.
func UpdateBudget(s *facts.Store, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("carsales: budget must be positive, got %d", amount)
	}
	if _, err := s.Retract(FactBudget); err != nil {
		return err
	}
	return s.Assert(facts.New(FactBudget, amount))
}

// AddCar records one car on the lot.
func AddCar(s *facts.Store, c Car) error {
	if c.ID == "" {
		return fmt.Errorf("carsales: car has no id")
	}
	return s.Assert(facts.New(FactCar, c.ID, c.Price, c.Make, c.Model))
}

// AddAvailability records one time the customer can come in. A customer may
// offer several.
func AddAvailability(s *facts.Store, slot Slot) error {
	return s.Assert(facts.New(FactAvailability, slot.Year, slot.Month, slot.Day, slot.Hour))
}

// CurrentIntent returns the stated intent, if any.
func CurrentIntent(s *facts.Store) (string, bool) {
	f, ok := singleton(s, FactIntent)
	if !ok {
		return "", false
	}
	return f.Args[0].(string), true
}

// CurrentBudget returns the stated budget, if any.
func CurrentBudget(s *facts.Store) (int, bool) {
	f, ok := singleton(s, FactBudget)
	if !ok {
		return 0, false
	}
	return f.Args[0].(int), true
}

// Cars lists the lot in assertion order.
func Cars(s *facts.Store) []Car {
	fs := lookup(s, FactCar)
	out := make([]Car, 0, len(fs))
	for _, f := range fs {
		out = append(out, Car{
			ID:    f.Args[0].(string),
			Price: f.Args[1].(int),
			Make:  f.Args[2].(string),
			Model: f.Args[3].(string),
		})
	}
	return out
}

// AffordableCars lists cars priced within the current budget, in lot order.
// Without a budget the answer is always empty.
func AffordableCars(s *facts.Store) []Car {
	budget, ok := CurrentBudget(s)
	if !ok {
		return nil
	}
	var out []Car
	for _, c := range Cars(s) {
		if c.Price <= budget {
			out = append(out, c)
		}
	}
	return out
}

// Availabilities lists every visit time the customer offered.
func Availabilities(s *facts.Store) []Slot {
	fs := lookup(s, FactAvailability)
	out := make([]Slot, 0, len(fs))
	for _, f := range fs {
		out = append(out, Slot{
			Year:  f.Args[0].(int),
			Month: f.Args[1].(int),
			Day:   f.Args[2].(int),
			Hour:  f.Args[3].(int),
		})
	}
	return out
}

// WorkableSlots filters the offered times down to ones the showroom can
// actually staff.
func WorkableSlots(s *facts.Store) []Slot {
	var out []Slot
	for _, slot := range Availabilities(s) {
		if slot.InShowroomHours() {
			out = append(out, slot)
		}
	}
	return out
}

func singleton(s *facts.Store, name string) (facts.Fact, bool) {
	f, ok, err := s.Singleton(name)
	if err != nil {
		panic(fmt.Sprintf("carsales: %v", err))
	}
	return f, ok
}

func lookup(s *facts.Store, name string) []facts.Fact {
	fs, err := s.LookupAll(name)
	if err != nil {
		panic(fmt.Sprintf("carsales: %v", err))
	}
	return fs
}
