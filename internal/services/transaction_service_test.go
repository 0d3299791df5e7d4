package services

import (
	"testing"

	"balanza/internal/events"
	"balanza/internal/models"
	"balanza/internal/pagination"
	"balanza/internal/testutil"

	"gorm.io/gorm"
)

// newTransactionService wires a transaction service against a fresh test
// database with its real collaborators.
func newTransactionService(db *gorm.DB) TransactionServicer {
	ledger := NewLedgerService(db)
	fundService := NewFundService(db, ledger)
	cardService := NewCardService(db)
	return NewTransactionService(db, fundService, cardService, ledger, events.NewHub())
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateTransactionValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := newTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	business := testutil.CreateTestBusiness(t, db, user.ID)
	fund := testutil.CreateTestFund(t, db, business.ID)

	tests := []struct {
		name    string
		input   TransactionInput
		errCode string
	}{
		{
			name:    "zero amount",
			input:   TransactionInput{Type: models.TransactionTypeIncome, Amount: 0, FundID: ptr(fund.ID)},
			errCode: "INVALID_AMOUNT",
		},
		{
			name:    "negative amount",
			input:   TransactionInput{Type: models.TransactionTypeIncome, Amount: -500, FundID: ptr(fund.ID)},
			errCode: "INVALID_AMOUNT",
		},
		{
			name:    "unknown type",
			input:   TransactionInput{Type: "REFUND", Amount: 1000, FundID: ptr(fund.ID)},
			errCode: "INVALID_TRANSACTION_TYPE",
		},
		{
			name:    "income without fund",
			input:   TransactionInput{Type: models.TransactionTypeIncome, Amount: 1000},
			errCode: "MISSING_ENTITY",
		},
		{
			name:    "card charge without card",
			input:   TransactionInput{Type: models.TransactionTypeCardCharge, Amount: 1000},
			errCode: "MISSING_ENTITY",
		},
		{
			name:    "card payment without fund",
			input:   TransactionInput{Type: models.TransactionTypeCardPayment, Amount: 1000, CardID: ptr(uuidLike)},
			errCode: "MISSING_ENTITY",
		},
		{
			name:    "nonexistent fund",
			input:   TransactionInput{Type: models.TransactionTypeExpense, Amount: 1000, FundID: ptr(uuidLike)},
			errCode: "FUND_NOT_FOUND",
		},
		{
			name:    "nonexistent card",
			input:   TransactionInput{Type: models.TransactionTypeCardCharge, Amount: 1000, CardID: ptr(uuidLike)},
			errCode: "CARD_NOT_FOUND",
		},
		{
			name:    "nonexistent category",
			input:   TransactionInput{Type: models.TransactionTypeIncome, Amount: 1000, FundID: ptr(fund.ID), CategoryID: ptr(uuidLike)},
			errCode: "CATEGORY_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateTransaction(user.ID, business.ID, tt.input)
			testutil.AssertAppError(t, err, tt.errCode)
		})
	}

	// None of the rejections above may leave a record behind.
	var count int64
	if err := db.Model(&models.Transaction{}).Where("business_id = ?", business.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count transactions: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no transactions after rejected submissions, found %d", count)
	}
}

// uuidLike is a well-formed id that matches no row.
const uuidLike = "0198c0de-0000-7000-8000-000000000000"

func TestCreateTransaction(t *testing.T) {
	t.Run("income credits the fund and records legs", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		business := testutil.CreateTestBusiness(t, db, user.ID)
		fund := testutil.CreateTestFund(t, db, business.ID)
		category := testutil.CreateTestCategory(t, db, business.ID)

		result, err := service.CreateTransaction(user.ID, business.ID, TransactionInput{
			Type:        models.TransactionTypeIncome,
			Amount:      250000,
			Description: "September invoice",
			FundID:      ptr(fund.ID),
			CategoryID:  ptr(category.ID),
		})
		testutil.AssertNoError(t, err)

		tx := result.Transaction
		if tx.Status != models.StatusApplied {
			t.Errorf("expected status APPLIED, got %s", tx.Status)
		}
		if tx.CreatedBy != user.ID {
			t.Errorf("expected created_by %s, got %s", user.ID, tx.CreatedBy)
		}
		if len(tx.Legs) != 1 {
			t.Fatalf("expected 1 leg, got %d", len(tx.Legs))
		}
		if tx.Legs[0].SignedAmount != 250000 {
			t.Errorf("expected leg amount 250000, got %d", tx.Legs[0].SignedAmount)
		}
		if len(result.Balances) != 1 || result.Balances[0].Balance != 250000 {
			t.Fatalf("expected fund balance 250000, got %+v", result.Balances)
		}
	})

	t.Run("currency defaults from the fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		business := testutil.CreateTestBusiness(t, db, user.ID)
		fund := testutil.CreateTestFund(t, db, business.ID)

		result, err := service.CreateTransaction(user.ID, business.ID, TransactionInput{
			Type:   models.TransactionTypeExpense,
			Amount: 10000,
			FundID: ptr(fund.ID),
		})
		testutil.AssertNoError(t, err)
		if result.Transaction.Currency != fund.Currency {
			t.Errorf("expected currency %s, got %s", fund.Currency, result.Transaction.Currency)
		}
		if result.Transaction.Legs[0].Currency != fund.Currency {
			t.Errorf("expected leg currency %s, got %s", fund.Currency, result.Transaction.Legs[0].Currency)
		}
	})

	t.Run("card payment touches both entities", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		business := testutil.CreateTestBusiness(t, db, user.ID)
		fund := testutil.CreateTestFund(t, db, business.ID)
		card := testutil.CreateTestCard(t, db, business.ID, 500000)

		// Seed the fund, spend on the card, then pay part of it back.
		_, err := service.CreateTransaction(user.ID, business.ID, TransactionInput{
			Type: models.TransactionTypeIncome, Amount: 300000, FundID: ptr(fund.ID),
		})
		testutil.AssertNoError(t, err)
		_, err = service.CreateTransaction(user.ID, business.ID, TransactionInput{
			Type: models.TransactionTypeCardCharge, Amount: 200000, CardID: ptr(card.ID),
		})
		testutil.AssertNoError(t, err)

		result, err := service.CreateTransaction(user.ID, business.ID, TransactionInput{
			Type:   models.TransactionTypeCardPayment,
			Amount: 150000,
			FundID: ptr(fund.ID),
			CardID: ptr(card.ID),
		})
		testutil.AssertNoError(t, err)

		if len(result.Transaction.Legs) != 2 {
			t.Fatalf("expected 2 legs, got %d", len(result.Transaction.Legs))
		}
		if len(result.Balances) != 2 {
			t.Fatalf("expected 2 touched balances, got %d", len(result.Balances))
		}
		balances := map[models.EntityType]int64{}
		for _, b := range result.Balances {
			balances[b.EntityType] = b.Balance
		}
		if balances[models.EntityTypeFund] != 150000 {
			t.Errorf("expected fund balance 150000, got %d", balances[models.EntityTypeFund])
		}
		if balances[models.EntityTypeCard] != -50000 {
			t.Errorf("expected card balance -50000, got %d", balances[models.EntityTypeCard])
		}

		var updated models.Card
		if err := db.First(&updated, "id = ?", card.ID).Error; err != nil {
			t.Fatalf("failed to reload card: %v", err)
		}
		if updated.AvailableCredit != 450000 {
			t.Errorf("expected available credit 450000, got %d", updated.AvailableCredit)
		}
	})

	t.Run("rejected apply leaves no transaction rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := newTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		business := testutil.CreateTestBusiness(t, db, user.ID)
		card := testutil.CreateTestCard(t, db, business.ID, 50000)

		_, err := service.CreateTransaction(user.ID, business.ID, TransactionInput{
			Type: models.TransactionTypeCardCharge, Amount: 80000, CardID: ptr(card.ID),
		})
		testutil.AssertAppError(t, err, "CREDIT_LIMIT_EXCEEDED")

		var txCount, legCount int64
		db.Model(&models.Transaction{}).Where("business_id = ?", business.ID).Count(&txCount)
		db.Model(&models.TransactionLeg{}).Count(&legCount)
		if txCount != 0 || legCount != 0 {
			t.Errorf("expected rollback to remove all rows, got %d transactions and %d legs", txCount, legCount)
		}

		var updated models.Card
		if err := db.First(&updated, "id = ?", card.ID).Error; err != nil {
			t.Fatalf("failed to reload card: %v", err)
		}
		if updated.AvailableCredit != 50000 {
			t.Errorf("expected available credit untouched at 50000, got %d", updated.AvailableCredit)
		}
	})

	t.Run("applied transaction publishes events", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		ledger := NewLedgerService(db)
		hub := events.NewHub()
		service := NewTransactionService(db, NewFundService(db, ledger), NewCardService(db), ledger, hub)
		user := testutil.CreateTestUser(t, db)
		business := testutil.CreateTestBusiness(t, db, user.ID)
		fund := testutil.CreateTestFund(t, db, business.ID)

		sub := hub.Subscribe(business.ID)
		defer hub.Unsubscribe(sub)

		_, err := service.CreateTransaction(user.ID, business.ID, TransactionInput{
			Type: models.TransactionTypeIncome, Amount: 5000, FundID: ptr(fund.ID),
		})
		testutil.AssertNoError(t, err)

		first := <-sub.C
		if first.Event != events.EventTxCreated {
			t.Errorf("expected first event %s, got %s", events.EventTxCreated, first.Event)
		}
		second := <-sub.C
		if second.Event != events.EventBalanceUpdated {
			t.Errorf("expected second event %s, got %s", events.EventBalanceUpdated, second.Event)
		}
	})
}

func TestGetBusinessTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := newTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	business := testutil.CreateTestBusiness(t, db, user.ID)
	fund := testutil.CreateTestFund(t, db, business.ID)
	card := testutil.CreateTestCard(t, db, business.ID, 1000000)
	category := testutil.CreateTestCategory(t, db, business.ID)

	submit := func(input TransactionInput) *models.Transaction {
		t.Helper()
		result, err := service.CreateTransaction(user.ID, business.ID, input)
		testutil.AssertNoError(t, err)
		return result.Transaction
	}

	submit(TransactionInput{Type: models.TransactionTypeIncome, Amount: 100000, FundID: ptr(fund.ID)})
	submit(TransactionInput{Type: models.TransactionTypeExpense, Amount: 30000, FundID: ptr(fund.ID), CategoryID: ptr(category.ID)})
	latest := submit(TransactionInput{Type: models.TransactionTypeCardCharge, Amount: 20000, CardID: ptr(card.ID)})

	t.Run("unfiltered list is newest first", func(t *testing.T) {
		result, err := service.GetBusinessTransactions(business.ID, pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 3 {
			t.Fatalf("expected 3 transactions, got %d", result.TotalItems)
		}
		if result.Data[0].ID != latest.ID {
			t.Errorf("expected newest transaction first, got %s", result.Data[0].ID)
		}
	})

	t.Run("filter by type", func(t *testing.T) {
		result, err := service.GetBusinessTransactions(business.ID, pagination.PageRequest{}, TransactionFilter{
			Type: ptr(models.TransactionTypeExpense),
		})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 || result.Data[0].Type != models.TransactionTypeExpense {
			t.Errorf("expected a single expense, got %+v", result.Data)
		}
	})

	t.Run("filter by category", func(t *testing.T) {
		result, err := service.GetBusinessTransactions(business.ID, pagination.PageRequest{}, TransactionFilter{
			CategoryID: ptr(category.ID),
		})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("expected 1 categorized transaction, got %d", result.TotalItems)
		}
	})

	t.Run("filter by card", func(t *testing.T) {
		result, err := service.GetBusinessTransactions(business.ID, pagination.PageRequest{}, TransactionFilter{
			CardID: ptr(card.ID),
		})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 || result.Data[0].Type != models.TransactionTypeCardCharge {
			t.Errorf("expected the card charge, got %+v", result.Data)
		}
	})

	t.Run("pagination caps the page", func(t *testing.T) {
		result, err := service.GetBusinessTransactions(business.ID, pagination.PageRequest{Page: 1, PageSize: 2}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 2 || result.TotalItems != 3 || result.TotalPages != 2 {
			t.Errorf("expected 2 of 3 items over 2 pages, got %d items, %d total, %d pages",
				len(result.Data), result.TotalItems, result.TotalPages)
		}
	})

	t.Run("other business sees nothing", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestBusiness(t, db, stranger.ID)
		result, err := service.GetBusinessTransactions(other.ID, pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 0 {
			t.Errorf("expected empty list for another business, got %d", result.TotalItems)
		}
	})
}

func TestGetTransactionByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := newTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	business := testutil.CreateTestBusiness(t, db, user.ID)
	fund := testutil.CreateTestFund(t, db, business.ID)
	card := testutil.CreateTestCard(t, db, business.ID, 1000000)

	_, err := service.CreateTransaction(user.ID, business.ID, TransactionInput{
		Type: models.TransactionTypeIncome, Amount: 500000, FundID: ptr(fund.ID),
	})
	testutil.AssertNoError(t, err)

	created, err := service.CreateTransaction(user.ID, business.ID, TransactionInput{
		Type:   models.TransactionTypeCardPayment,
		Amount: 75000,
		FundID: ptr(fund.ID),
		CardID: ptr(card.ID),
	})
	testutil.AssertNoError(t, err)

	t.Run("returns the transaction with its legs", func(t *testing.T) {
		tx, err := service.GetTransactionByID(business.ID, created.Transaction.ID)
		testutil.AssertNoError(t, err)
		if len(tx.Legs) != 2 {
			t.Fatalf("expected 2 preloaded legs, got %d", len(tx.Legs))
		}
		var sum int64
		for _, leg := range tx.Legs {
			sum += leg.SignedAmount
		}
		if sum != 0 {
			t.Errorf("expected payment legs to sum to zero, got %d", sum)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := service.GetTransactionByID(business.ID, uuidLike)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("scoped to its business", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestBusiness(t, db, stranger.ID)
		_, err := service.GetTransactionByID(other.ID, created.Transaction.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
