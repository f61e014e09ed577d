package facts

import (
	"testing"
)

func TestFactString(t *testing.T) {
	tests := []struct {
		fact Fact
		want string
	}{
		{New("intent", "buy"), `intent("buy")`},
		{New("budget", 25000), `budget(25000)`},
		{New("car", "toy-cam-1", 24000, "Toyota", "Camry"), `car("toy-cam-1", 24000, "Toyota", "Camry")`},
		{New("customer_available", 2024, 10, 15, 10), `customer_available(2024, 10, 15, 10)`},
		{New("flag", true), `flag(true)`},
		{New("empty"), `empty()`},
	}
	for _, tt := range tests {
		if got := tt.fact.String(); got != tt.want {
			t.Errorf("Expected %s, got %s", tt.want, got)
		}
	}
}

func TestFactEqual(t *testing.T) {
	a := New("car", "toy-cam-1", 24000, "Toyota", "Camry")

	// 1. Same name and args
	if !a.Equal(New("car", "toy-cam-1", 24000, "Toyota", "Camry")) {
		t.Error("Expected identical facts to be equal")
	}

	// 2. Different argument value
	if a.Equal(New("car", "toy-cam-1", 25000, "Toyota", "Camry")) {
		t.Error("Expected facts with different args to differ")
	}

	// 3. Different name
	if a.Equal(New("truck", "toy-cam-1", 24000, "Toyota", "Camry")) {
		t.Error("Expected facts with different names to differ")
	}

	// 4. Different arity
	if a.Equal(New("car", "toy-cam-1", 24000, "Toyota")) {
		t.Error("Expected facts with different arity to differ")
	}
}

func TestTypeString(t *testing.T) {
	if String.String() != "string" || Int.String() != "int" || Bool.String() != "bool" {
		t.Errorf("Unexpected type names: %s %s %s", String, Int, Bool)
	}
	if Type(99).String() != "Type(99)" {
		t.Errorf("Expected Type(99), got %s", Type(99))
	}
}
