package services

import (
	"testing"

	"balanza/internal/events"
	"balanza/internal/models"
	"balanza/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)
	business := testutil.CreateTestBusiness(t, db, user.ID)

	t.Run("creates a root category", func(t *testing.T) {
		category, err := service.CreateCategory(business.ID, "Groceries", "#22c55e", "cart", nil)
		testutil.AssertNoError(t, err)
		if category.ID == "" || category.ParentID != nil {
			t.Errorf("expected a root category, got %+v", category)
		}
	})

	t.Run("duplicate name in the same business", func(t *testing.T) {
		_, err := service.CreateCategory(business.ID, "Groceries", "#ef4444", "", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("same name in another business is fine", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestBusiness(t, db, stranger.ID)
		_, err := service.CreateCategory(other.ID, "Groceries", "#ef4444", "", nil)
		testutil.AssertNoError(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := service.CreateCategory(business.ID, "", "#000000", "", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("nests one level", func(t *testing.T) {
		parent, err := service.CreateCategory(business.ID, "Transport", "#3b82f6", "", nil)
		testutil.AssertNoError(t, err)
		child, err := service.CreateCategory(business.ID, "Fuel", "#3b82f6", "", ptr(parent.ID))
		testutil.AssertNoError(t, err)
		if child.ParentID == nil || *child.ParentID != parent.ID {
			t.Fatalf("expected child of %s, got %+v", parent.ID, child)
		}

		// A child cannot itself become a parent.
		_, err = service.CreateCategory(business.ID, "Diesel", "#3b82f6", "", ptr(child.ID))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown parent", func(t *testing.T) {
		_, err := service.CreateCategory(business.ID, "Orphan", "#000000", "", ptr(uuidLike))
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestUpdateCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)
	business := testutil.CreateTestBusiness(t, db, user.ID)
	category := testutil.CreateTestCategory(t, db, business.ID)

	t.Run("updates descriptors", func(t *testing.T) {
		updated, err := service.UpdateCategory(business.ID, category.ID, "Utilities", "#f59e0b", "bolt", nil)
		testutil.AssertNoError(t, err)
		if updated.Name != "Utilities" || updated.Color != "#f59e0b" || updated.Icon != "bolt" {
			t.Errorf("expected updated descriptors, got %+v", updated)
		}
	})

	t.Run("cannot be its own parent", func(t *testing.T) {
		_, err := service.UpdateCategory(business.ID, category.ID, "", "", "", ptr(category.ID))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := service.UpdateCategory(business.ID, uuidLike, "x", "", "", nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)
	business := testutil.CreateTestBusiness(t, db, user.ID)

	t.Run("deletes an unused category", func(t *testing.T) {
		category := testutil.CreateTestCategory(t, db, business.ID)
		err := service.DeleteCategory(business.ID, category.ID)
		testutil.AssertNoError(t, err)
		_, err = service.GetCategoryByID(business.ID, category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("blocked when referenced by a transaction", func(t *testing.T) {
		category := testutil.CreateTestCategory(t, db, business.ID)
		fund := testutil.CreateTestFund(t, db, business.ID)
		ledger := NewLedgerService(db)
		txService := NewTransactionService(db, NewFundService(db, ledger), NewCardService(db), ledger, events.NewHub())
		_, err := txService.CreateTransaction(user.ID, business.ID, TransactionInput{
			Type: models.TransactionTypeExpense, Amount: 1000, FundID: ptr(fund.ID), CategoryID: ptr(category.ID),
		})
		testutil.AssertNoError(t, err)

		err = service.DeleteCategory(business.ID, category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_IN_USE")
	})

	t.Run("blocked when it has children", func(t *testing.T) {
		parent, err := service.CreateCategory(business.ID, "Parent To Keep", "#000000", "", nil)
		testutil.AssertNoError(t, err)
		_, err = service.CreateCategory(business.ID, "Child In The Way", "#000000", "", ptr(parent.ID))
		testutil.AssertNoError(t, err)

		err = service.DeleteCategory(business.ID, parent.ID)
		testutil.AssertAppError(t, err, "CATEGORY_HAS_CHILDREN")
	})

	t.Run("unknown category", func(t *testing.T) {
		err := service.DeleteCategory(business.ID, uuidLike)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}
