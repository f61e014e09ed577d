package facts

import "go.uber.org/zap/zapcore"

// Signal is an opaque label for one observed condition, compared by value.
type Signal string

// ObservationSet is a deduplicated collection of signals describing what is
// currently known about an incident. It grows only by union; nothing is ever
// removed. A set is owned by one investigation at a time.
type ObservationSet struct {
	order []Signal
	seen  map[Signal]struct{}
}

// NewObservationSet builds a set from the given signals.
func NewObservationSet(signals ...Signal) *ObservationSet {
	o := &ObservationSet{seen: make(map[Signal]struct{}, len(signals))}
	o.Observe(signals...)
	return o
}

// Observe adds signals to the set. Already-known signals are ignored.
func (o *ObservationSet) Observe(signals ...Signal) {
	for _, s := range signals {
		if _, ok := o.seen[s]; ok {
			continue
		}
		o.seen[s] = struct{}{}
		o.order = append(o.order, s)
	}
}

// Contains reports whether a signal has been observed. Nil-safe.
func (o *ObservationSet) Contains(s Signal) bool {
	if o == nil {
		return false
	}
	_, ok := o.seen[s]
	return ok
}

// All returns the observed signals in observation order.
func (o *ObservationSet) All() []Signal {
	if o == nil {
		return nil
	}
	out := make([]Signal, len(o.order))
	copy(out, o.order)
	return out
}

// Len returns the number of distinct observed signals.
func (o *ObservationSet) Len() int {
	if o == nil {
		return 0
	}
	return len(o.order)
}

// MarshalLogArray renders the signals for structured logging.
func (o *ObservationSet) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	if o == nil {
		return nil
	}
	for _, s := range o.order {
		enc.AppendString(string(s))
	}
	return nil
}
