// Package facts holds the mutable state a decision runs against: a
// schema-checked store of asserted facts for conversational flows, and a
// grow-only set of observed signals for incident investigations.
package facts

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Type constrains the value accepted at one argument position of a fact.
type Type uint8

const (
	String Type = iota + 1
	Int
	Bool
)

// String returns the type name used in error messages.
func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Int:
		return "int"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Decl declares one fact name: its argument types (arity is the number of
// types) and whether the store keeps at most one instance.
type Decl struct {
	Name      string
	Types     []Type
	Singleton bool
}

// Fact is a named tuple of asserted knowledge, e.g.
// car("toy-cam-1", 24000, "Toyota", "Camry").
type Fact struct {
	Name string
	Args []interface{}
}

// New builds a fact from a name and positional arguments.
func New(name string, args ...interface{}) Fact {
	return Fact{Name: name, Args: args}
}

// String renders the fact in functor notation.
func (f Fact) String() string {
	var args []string
	for _, arg := range f.Args {
		switch v := arg.(type) {
		case string:
			args = append(args, fmt.Sprintf("%q", v))
		case int:
			args = append(args, fmt.Sprintf("%d", v))
		case bool:
			args = append(args, fmt.Sprintf("%t", v))
		default:
			args = append(args, fmt.Sprintf("%v", v))
		}
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(args, ", "))
}

// Equal reports whether two facts share name and arguments.
func (f Fact) Equal(other Fact) bool {
	if f.Name != other.Name || len(f.Args) != len(other.Args) {
		return false
	}
	for i := range f.Args {
		if f.Args[i] != other.Args[i] {
			return false
		}
	}
	return true
}

// MarshalLogObject renders the fact for structured logging.
func (f Fact) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", f.Name)
	return enc.AddArray("args", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, arg := range f.Args {
			switch v := arg.(type) {
			case string:
				ae.AppendString(v)
			case int:
				ae.AppendInt(v)
			case bool:
				ae.AppendBool(v)
			default:
				ae.AppendString(fmt.Sprintf("%v", v))
			}
		}
		return nil
	}))
}
