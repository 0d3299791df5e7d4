package services

import (
	"testing"

	"balanza/internal/events"
	"balanza/internal/models"
	"balanza/internal/pagination"
	"balanza/internal/testutil"
)

func TestCreateFund(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	ledger := NewLedgerService(db)
	service := NewFundService(db, ledger)
	user := testutil.CreateTestUser(t, db)
	business := testutil.CreateTestBusiness(t, db, user.ID)

	t.Run("creates fund with zero balance row", func(t *testing.T) {
		fund, err := service.CreateFund(business.ID, "Operating Account", models.FundTypeBank, "USD")
		testutil.AssertNoError(t, err)
		if fund.ID == "" {
			t.Fatal("expected fund ID to be set")
		}
		if !fund.IsActive {
			t.Error("expected new fund to be active")
		}

		balance, err := ledger.GetEntityBalance(business.ID, models.EntityTypeFund, fund.ID)
		testutil.AssertNoError(t, err)
		if balance != 0 {
			t.Errorf("expected zero starting balance, got %d", balance)
		}

		var row models.Balance
		if err := db.Where("entity_type = ? AND entity_id = ?", models.EntityTypeFund, fund.ID).
			First(&row).Error; err != nil {
			t.Fatalf("expected a balance projection row: %v", err)
		}
		if row.Currency != "USD" {
			t.Errorf("expected balance row currency USD, got %s", row.Currency)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := service.CreateFund(business.ID, "", models.FundTypeCash, "COP")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown fund type", func(t *testing.T) {
		_, err := service.CreateFund(business.ID, "Petty Cash", "CRYPTO", "COP")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("currency defaults when omitted", func(t *testing.T) {
		fund, err := service.CreateFund(business.ID, "Default Currency Fund", models.FundTypeWallet, "")
		testutil.AssertNoError(t, err)
		if fund.Currency == "" {
			t.Error("expected a default currency to be applied")
		}
	})
}

func TestGetFund(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	ledger := NewLedgerService(db)
	service := NewFundService(db, ledger)
	txService := NewTransactionService(db, service, NewCardService(db), ledger, events.NewHub())
	user := testutil.CreateTestUser(t, db)
	business := testutil.CreateTestBusiness(t, db, user.ID)
	fund := testutil.CreateTestFund(t, db, business.ID)

	t.Run("populates the derived balance", func(t *testing.T) {
		_, err := txService.CreateTransaction(user.ID, business.ID, TransactionInput{
			Type: models.TransactionTypeIncome, Amount: 88000, FundID: ptr(fund.ID),
		})
		testutil.AssertNoError(t, err)

		got, err := service.GetFund(business.ID, fund.ID)
		testutil.AssertNoError(t, err)
		if got.Balance != 88000 {
			t.Errorf("expected balance 88000, got %d", got.Balance)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := service.GetFund(business.ID, uuidLike)
		testutil.AssertAppError(t, err, "FUND_NOT_FOUND")
	})

	t.Run("scoped to its business", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestBusiness(t, db, stranger.ID)
		_, err := service.GetFund(other.ID, fund.ID)
		testutil.AssertAppError(t, err, "FUND_NOT_FOUND")
	})

	t.Run("deactivated fund is hidden", func(t *testing.T) {
		hidden := testutil.CreateTestFund(t, db, business.ID)
		_, err := service.UpdateFund(business.ID, hidden.ID, FundUpdateFields{IsActive: ptr(false)})
		testutil.AssertNoError(t, err)
		_, err = service.GetFund(business.ID, hidden.ID)
		testutil.AssertAppError(t, err, "FUND_NOT_FOUND")
	})
}

func TestGetBusinessFunds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	ledger := NewLedgerService(db)
	service := NewFundService(db, ledger)
	user := testutil.CreateTestUser(t, db)
	business := testutil.CreateTestBusiness(t, db, user.ID)

	_, err := service.CreateFund(business.ID, "Bravo", models.FundTypeBank, "COP")
	testutil.AssertNoError(t, err)
	_, err = service.CreateFund(business.ID, "Alpha", models.FundTypeCash, "COP")
	testutil.AssertNoError(t, err)
	retired, err := service.CreateFund(business.ID, "Charlie", models.FundTypeWallet, "COP")
	testutil.AssertNoError(t, err)
	_, err = service.UpdateFund(business.ID, retired.ID, FundUpdateFields{IsActive: ptr(false)})
	testutil.AssertNoError(t, err)

	result, err := service.GetBusinessFunds(business.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if result.TotalItems != 2 {
		t.Fatalf("expected 2 active funds, got %d", result.TotalItems)
	}
	if result.Data[0].Name != "Alpha" || result.Data[1].Name != "Bravo" {
		t.Errorf("expected funds ordered by name, got %s, %s", result.Data[0].Name, result.Data[1].Name)
	}
}

func TestUpdateFund(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewFundService(db, NewLedgerService(db))
	user := testutil.CreateTestUser(t, db)
	business := testutil.CreateTestBusiness(t, db, user.ID)
	fund := testutil.CreateTestFund(t, db, business.ID)

	t.Run("renames", func(t *testing.T) {
		updated, err := service.UpdateFund(business.ID, fund.ID, FundUpdateFields{Name: ptr("Renamed Fund")})
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed Fund" {
			t.Errorf("expected renamed fund, got %s", updated.Name)
		}
	})

	t.Run("empty name is ignored", func(t *testing.T) {
		updated, err := service.UpdateFund(business.ID, fund.ID, FundUpdateFields{Name: ptr("")})
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed Fund" {
			t.Errorf("expected name unchanged, got %s", updated.Name)
		}
	})

	t.Run("unknown fund", func(t *testing.T) {
		_, err := service.UpdateFund(business.ID, uuidLike, FundUpdateFields{Name: ptr("x")})
		testutil.AssertAppError(t, err, "FUND_NOT_FOUND")
	})
}
