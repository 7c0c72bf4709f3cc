package models

import (
	"strings"
	"testing"
)

func TestFilterAllStates(t *testing.T) {
	table := twoStateTable(t)

	result := Filter(table, AllStates)
	if !result.All {
		t.Error("Filter(All) should set All")
	}
	if len(result.Rows) != 2 {
		t.Errorf("Filter(All) returned %d rows, want 2", len(result.Rows))
	}
	if result.DistinctStates != 2 {
		t.Errorf("DistinctStates = %d, want 2", result.DistinctStates)
	}
}

func TestFilterSingleState(t *testing.T) {
	table := twoStateTable(t)

	result := Filter(table, Selection("Beta"))
	if result.All {
		t.Error("Filter(Beta) should not set All")
	}
	if len(result.Rows) != 1 || result.Rows[0].State != "Beta" {
		t.Errorf("Filter(Beta) returned %+v, want the Beta row", result.Rows)
	}
}

func TestFilterUnknownState(t *testing.T) {
	table := twoStateTable(t)

	result := Filter(table, Selection("Nowhere"))
	if len(result.Rows) != 0 {
		t.Errorf("Filter(Nowhere) returned %d rows, want 0", len(result.Rows))
	}
}

func TestControllerOptions(t *testing.T) {
	table, err := LoadTable(strings.NewReader(testCSV(
		testRow("New York", 100, 1000, 1, 30, 50),
		testRow("Alabama", 50, 500, 2, 10, 60),
	)))
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	controller := NewController(table)
	options := controller.Options()
	want := []string{"All", "Alabama", "New York"}
	if len(options) != len(want) {
		t.Fatalf("Options = %v, want %v", options, want)
	}
	for i := range want {
		if options[i] != want[i] {
			t.Errorf("Options[%d] = %q, want %q", i, options[i], want[i])
		}
	}

	if controller.Current() != AllStates {
		t.Errorf("Initial selection = %q, want All", controller.Current())
	}

	// Mutating the returned slice must not affect later calls.
	options[0] = "mutated"
	if fresh := controller.Options(); fresh[0] != "All" {
		t.Errorf("Options()[0] = %q after caller mutation, want All", fresh[0])
	}
}

func TestControllerSelect(t *testing.T) {
	table, err := LoadTable(strings.NewReader(testCSV(
		testRow("New York", 100, 1000, 1, 30, 50),
	)))
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	controller := NewController(table)

	sel, err := controller.Select("New York")
	if err != nil || sel != Selection("New York") {
		t.Fatalf("Select(New York) = %q, %v", sel, err)
	}
	if controller.Current() != Selection("New York") {
		t.Errorf("Current() = %q after Select", controller.Current())
	}

	// Lowercased input resolves through title-casing.
	sel, err = controller.Select("new york")
	if err != nil || sel != Selection("New York") {
		t.Errorf("Select(new york) = %q, %v, want New York", sel, err)
	}

	if _, err := controller.Select("Atlantis"); err == nil {
		t.Error("Select(Atlantis) should fail")
	}
	if controller.Current() != Selection("New York") {
		t.Error("A rejected Select must leave the selection unchanged")
	}

	if sel, err := controller.Select("All"); err != nil || sel != AllStates {
		t.Errorf("Select(All) = %q, %v", sel, err)
	}
}
