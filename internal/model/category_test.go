package model

import (
	"errors"
	"testing"

	"github.com/pocketbook/pocketbook/internal/common"
)

func TestDefaultCategorySetSeedsEveryType(t *testing.T) {
	set := DefaultCategorySet()

	if len(set.Income) == 0 || len(set.Expense) == 0 || len(set.Transfer) == 0 {
		t.Fatal("every transaction type should start with seed categories")
	}
	if !set.Contains(TypeIncome, "Salary") {
		t.Error("income seed should include Salary")
	}
	if !set.Contains(TypeExpense, "Food") {
		t.Error("expense seed should include Food")
	}
	if !set.Contains(TypeTransfer, "Between Accounts") {
		t.Error("transfer seed should include Between Accounts")
	}
}

func TestCategorySetAdd(t *testing.T) {
	set := DefaultCategorySet()

	if err := set.Add(TypeExpense, "Pets"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !set.Contains(TypeExpense, "Pets") {
		t.Error("added category should be present")
	}

	if err := set.Add(TypeExpense, "Pets"); !errors.Is(err, common.ErrDuplicateEntry) {
		t.Errorf("duplicate Add = %v, want ErrDuplicateEntry", err)
	}
	if err := set.Add(TypeExpense, ""); !errors.Is(err, common.ErrValidation) {
		t.Errorf("empty name Add = %v, want ErrValidation", err)
	}
	if err := set.Add("refund", "Pets"); !errors.Is(err, common.ErrValidation) {
		t.Errorf("unknown type Add = %v, want ErrValidation", err)
	}
}

func TestCategorySetAddSameNameUnderTwoTypes(t *testing.T) {
	set := DefaultCategorySet()

	// "Other" already exists for income and expense; a third type is fine.
	if err := set.Add(TypeTransfer, "Other"); err != nil {
		t.Fatalf("Add under a different type failed: %v", err)
	}
	if !set.ContainsAny("Other") {
		t.Error("ContainsAny should see the name")
	}
}

func TestCategorySetRemove(t *testing.T) {
	set := DefaultCategorySet()

	if err := set.Remove(TypeExpense, "Food"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if set.Contains(TypeExpense, "Food") {
		t.Error("removed category should be gone")
	}

	if err := set.Remove(TypeExpense, "Food"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Remove of missing category = %v, want ErrNotFound", err)
	}
}
