package facts

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"verdict/internal/logging"
)

var (
	// ErrUnknownFact is returned for fact names outside the store's schema.
	ErrUnknownFact = errors.New("unknown fact name")
	// ErrArity is returned when arguments don't cover the declared arity.
	ErrArity = errors.New("arity mismatch")
	// ErrArgType is returned when an argument has the wrong type.
	ErrArgType = errors.New("argument type mismatch")
	// ErrSingletonConflict is returned when a second, different value is
	// asserted for a singleton fact.
	ErrSingletonConflict = errors.New("conflicting singleton fact")
)

// Any matches any value at its position in a lookup or retract pattern.
var Any = wildcard{}

type wildcard struct{}

func (wildcard) String() string { return "_" }

// Store holds the asserted facts of one session. Fact names must be declared
// up front; asserts and patterned queries are checked against the schema and
// misuse fails with a descriptive error. Absence of a declared fact is a
// normal state, never an error.
//
// Assert policy for singleton facts: a second, different value is rejected
// with ErrSingletonConflict; re-asserting the identical value is a no-op.
// Callers that want replace semantics retract first.
type Store struct {
	mu    sync.RWMutex
	decls map[string]Decl
	facts map[string][]Fact
	log   *zap.Logger
}

// NewStore builds a store accepting exactly the declared fact names.
func NewStore(decls ...Decl) (*Store, error) {
	return NewStoreWithLogger(nil, decls...)
}

// NewStoreWithLogger builds a store that traces mutations to a logger.
func NewStoreWithLogger(log *zap.Logger, decls ...Decl) (*Store, error) {
	s := &Store{
		decls: make(map[string]Decl, len(decls)),
		facts: make(map[string][]Fact),
		log:   logging.Named(log, logging.Store),
	}
	for _, d := range decls {
		if d.Name == "" {
			return nil, errors.New("declare: empty fact name")
		}
		if _, dup := s.decls[d.Name]; dup {
			return nil, fmt.Errorf("declare %s: duplicate declaration", d.Name)
		}
		s.decls[d.Name] = d
	}
	return s, nil
}

// Assert adds a fact. Re-asserting an identical fact is ignored, matching
// set semantics.
func (s *Store) Assert(f Fact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	decl, err := s.check(f.Name, f.Args, false)
	if err != nil {
		return fmt.Errorf("assert: %w", err)
	}

	existing := s.facts[f.Name]
	for _, e := range existing {
		if e.Equal(f) {
			return nil
		}
	}
	if decl.Singleton && len(existing) > 0 {
		return fmt.Errorf("assert %s: %w: already holds %s", f.Name, ErrSingletonConflict, existing[0])
	}

	s.facts[f.Name] = append(existing, f)
	s.log.Debug("fact asserted", zap.Object("fact", f))
	return nil
}

// Retract removes facts matching the pattern and reports how many were
// removed. An empty pattern removes every instance of the name; otherwise
// the pattern must cover the declared arity, with Any matching any value.
func (s *Store) Retract(name string, pattern ...interface{}) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(pattern) == 0 {
		if _, ok := s.decls[name]; !ok {
			return 0, fmt.Errorf("retract %s: %w", name, ErrUnknownFact)
		}
		removed := len(s.facts[name])
		delete(s.facts, name)
		if removed > 0 {
			s.log.Debug("facts retracted", zap.String("name", name), zap.Int("removed", removed))
		}
		return removed, nil
	}

	if _, err := s.check(name, pattern, true); err != nil {
		return 0, fmt.Errorf("retract: %w", err)
	}

	kept := make([]Fact, 0, len(s.facts[name]))
	removed := 0
	for _, f := range s.facts[name] {
		if matches(f, pattern) {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	s.facts[name] = kept
	if removed > 0 {
		s.log.Debug("facts retracted", zap.String("name", name), zap.Int("removed", removed))
	}
	return removed, nil
}

// Has reports whether a fact matching the pattern exists. An empty pattern
// checks for any instance of the name.
func (s *Store) Has(name string, pattern ...interface{}) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(pattern) == 0 {
		if _, ok := s.decls[name]; !ok {
			return false, fmt.Errorf("has %s: %w", name, ErrUnknownFact)
		}
		return len(s.facts[name]) > 0, nil
	}
	if _, err := s.check(name, pattern, true); err != nil {
		return false, fmt.Errorf("has: %w", err)
	}
	for _, f := range s.facts[name] {
		if matches(f, pattern) {
			return true, nil
		}
	}
	return false, nil
}

// LookupAll returns every instance of a fact name in assertion order.
func (s *Store) LookupAll(name string) ([]Fact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.decls[name]; !ok {
		return nil, fmt.Errorf("lookup %s: %w", name, ErrUnknownFact)
	}
	out := make([]Fact, len(s.facts[name]))
	copy(out, s.facts[name])
	return out, nil
}

// Singleton returns the instance of a singleton fact, if set. Calling it for
// a name not declared singleton is caller misuse.
func (s *Store) Singleton(name string) (Fact, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	decl, ok := s.decls[name]
	if !ok {
		return Fact{}, false, fmt.Errorf("singleton %s: %w", name, ErrUnknownFact)
	}
	if !decl.Singleton {
		return Fact{}, false, fmt.Errorf("singleton %s: fact is not declared singleton", name)
	}
	if len(s.facts[name]) == 0 {
		return Fact{}, false, nil
	}
	return s.facts[name][0], true, nil
}

// Len returns the total number of facts held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, fs := range s.facts {
		n += len(fs)
	}
	return n
}

// check validates a name and argument list against the schema. Patterns may
// use Any as a wildcard; asserted values may not.
func (s *Store) check(name string, args []interface{}, pattern bool) (Decl, error) {
	decl, ok := s.decls[name]
	if !ok {
		return Decl{}, fmt.Errorf("%s: %w", name, ErrUnknownFact)
	}
	if len(args) != len(decl.Types) {
		return Decl{}, fmt.Errorf("%s: %w: want %d args, got %d", name, ErrArity, len(decl.Types), len(args))
	}
	for i, arg := range args {
		if pattern {
			if _, wild := arg.(wildcard); wild {
				continue
			}
		}
		if err := checkArg(decl.Types[i], arg); err != nil {
			return Decl{}, fmt.Errorf("%s arg %d: %w", name, i, err)
		}
	}
	return decl, nil
}

func checkArg(t Type, arg interface{}) error {
	switch t {
	case String:
		if _, ok := arg.(string); !ok {
			return fmt.Errorf("%w: want string, got %T", ErrArgType, arg)
		}
	case Int:
		if _, ok := arg.(int); !ok {
			return fmt.Errorf("%w: want int, got %T", ErrArgType, arg)
		}
	case Bool:
		if _, ok := arg.(bool); !ok {
			return fmt.Errorf("%w: want bool, got %T", ErrArgType, arg)
		}
	default:
		return fmt.Errorf("%w: undeclared type %v", ErrArgType, t)
	}
	return nil
}

func matches(f Fact, pattern []interface{}) bool {
	for i, p := range pattern {
		if _, wild := p.(wildcard); wild {
			continue
		}
		if f.Args[i] != p {
			return false
		}
	}
	return true
}
