package calculator

import (
	"testing"

	"precinct/internal/penalcode"
)

func testItem(id int, abbr string) penalcode.Item {
	return penalcode.Item{ID: id, Name: "Item " + abbr, Abbreviation: abbr}
}

func TestCart_DuplicateMode_AddKeepsSeparateLines(t *testing.T) {
	cart := NewCart(AddModeDuplicate)
	item := testItem(1, "KM")

	first := cart.Add(item)
	second := cart.Add(item)

	if cart.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", cart.Len())
	}
	if first.LineID == second.LineID {
		t.Fatal("duplicate lines must have distinct line ids")
	}

	// Removing one of two identical lines leaves exactly one, untouched.
	if !cart.Remove(second.LineID) {
		t.Fatal("remove by line id failed")
	}
	lines := cart.Lines()
	if len(lines) != 1 || lines[0].LineID != first.LineID || lines[0].Quantity != 1 {
		t.Fatalf("unexpected cart after removal: %+v", lines)
	}
}

func TestCart_MergeMode_AddIncrementsQuantity(t *testing.T) {
	cart := NewCart(AddModeMerge)
	item := testItem(1, "KM")

	cart.Add(item)
	before := cart.Lines()

	cart.Add(item)
	if cart.Len() != 1 {
		t.Fatalf("merge mode must keep one line per item, got %d", cart.Len())
	}
	if cart.Lines()[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Lines()[0].Quantity)
	}

	// Add then decrement restores the exact pre-add state.
	cart.UpdateQuantity(1, -1)
	after := cart.Lines()
	if len(after) != 1 || after[0].LineID != before[0].LineID || after[0].Quantity != before[0].Quantity {
		t.Fatalf("expected %+v, got %+v", before, after)
	}
}

func TestCart_DecrementRemovesMostRecentLine(t *testing.T) {
	cart := NewCart(AddModeDuplicate)
	item := testItem(1, "KM")
	other := testItem(2, "GYH")

	first := cart.Add(item)
	cart.Add(other)
	second := cart.Add(item)

	cart.UpdateQuantity(1, -1)

	for _, line := range cart.Lines() {
		if line.LineID == second.LineID {
			t.Fatal("decrement must remove the most-recently-added matching line")
		}
	}

	found := false
	for _, line := range cart.Lines() {
		if line.LineID == first.LineID {
			found = true
		}
	}
	if !found {
		t.Fatal("older matching line must survive a single decrement")
	}
}

func TestCart_QuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart(AddModeDuplicate)
	cart.Add(testItem(1, "KM"))

	cart.UpdateQuantity(1, -1)
	if cart.Len() != 0 {
		t.Fatalf("expected empty cart, got %d lines", cart.Len())
	}

	// Decrementing an absent item is a no-op, not a panic.
	cart.UpdateQuantity(1, -3)
}

func TestCart_IncrementClonesLine(t *testing.T) {
	cart := NewCart(AddModeDuplicate)
	cart.Add(testItem(1, "KM"))

	cart.UpdateQuantity(1, 2)
	if cart.Len() != 3 {
		t.Fatalf("expected 3 lines after +2, got %d", cart.Len())
	}

	seen := make(map[string]bool)
	for _, line := range cart.Lines() {
		if seen[line.LineID] {
			t.Fatal("cloned lines must get fresh line ids")
		}
		seen[line.LineID] = true
		if line.Quantity != 1 {
			t.Fatalf("cloned line quantity must be 1, got %d", line.Quantity)
		}
	}
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart(AddModeDuplicate)
	cart.Add(testItem(1, "KM"))
	cart.Clear()
	if cart.Len() != 0 {
		t.Fatal("clear must empty the cart")
	}
}
