package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestFundRegistryFlow(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "funds@flow.test", "password123")
	businessID := app.createBusiness(t, token, "Registry Co")

	t.Run("create and fetch a fund", func(t *testing.T) {
		rec := app.scopedRequest(http.MethodPost, "/api/v1/funds",
			`{"name":"Main Account","fund_type":"BANK","currency":"USD"}`, token, businessID)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create fund status = %d, body: %s", rec.Code, rec.Body.String())
		}
		fund := parseJSON(t, rec)["fund"].(map[string]interface{})
		fundID := fund["id"].(string)
		if fund["balance"] != nil && fund["balance"].(float64) != 0 {
			t.Errorf("expected zero starting balance, got %v", fund["balance"])
		}

		rec = app.scopedRequest(http.MethodGet, "/api/v1/funds/"+fundID, "", token, businessID)
		if rec.Code != http.StatusOK {
			t.Fatalf("get fund status = %d", rec.Code)
		}
		got := parseJSON(t, rec)["fund"].(map[string]interface{})
		if got["name"] != "Main Account" || got["currency"] != "USD" {
			t.Errorf("unexpected fund payload: %v", got)
		}
	})

	t.Run("invalid fund type is rejected", func(t *testing.T) {
		rec := app.scopedRequest(http.MethodPost, "/api/v1/funds",
			`{"name":"Bad","fund_type":"CRYPTO"}`, token, businessID)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("invalid currency is rejected", func(t *testing.T) {
		rec := app.scopedRequest(http.MethodPost, "/api/v1/funds",
			`{"name":"Bad","fund_type":"CASH","currency":"DOLLARS"}`, token, businessID)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("deactivated fund disappears from the list", func(t *testing.T) {
		fundID := app.createFund(t, token, businessID, "Short Lived")

		rec := app.scopedRequest(http.MethodPut, "/api/v1/funds/"+fundID,
			`{"is_active":false}`, token, businessID)
		if rec.Code != http.StatusOK {
			t.Fatalf("update fund status = %d, body: %s", rec.Code, rec.Body.String())
		}

		rec = app.scopedRequest(http.MethodGet, "/api/v1/funds/"+fundID, "", token, businessID)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected deactivated fund to 404, got %d", rec.Code)
		}
	})
}

func TestCardRegistryFlow(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "cards@flow.test", "password123")
	businessID := app.createBusiness(t, token, "Card Co")

	t.Run("create card with full credit", func(t *testing.T) {
		rec := app.scopedRequest(http.MethodPost, "/api/v1/cards",
			`{"name":"Visa","last_four":"4242","credit_limit":2000000,"closing_day":10,"due_day":25}`,
			token, businessID)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create card status = %d, body: %s", rec.Code, rec.Body.String())
		}
		card := parseJSON(t, rec)["card"].(map[string]interface{})
		if card["available_credit"].(float64) != 2000000 {
			t.Errorf("expected full credit available, got %v", card["available_credit"])
		}
	})

	t.Run("binding rejects bad payloads", func(t *testing.T) {
		payloads := []string{
			`{"name":"x","credit_limit":0,"closing_day":1,"due_day":1}`,
			`{"name":"x","credit_limit":1000,"closing_day":32,"due_day":1}`,
			`{"name":"x","last_four":"42","credit_limit":1000,"closing_day":1,"due_day":1}`,
			`{"name":"x","last_four":"abcd","credit_limit":1000,"closing_day":1,"due_day":1}`,
		}
		for i, payload := range payloads {
			rec := app.scopedRequest(http.MethodPost, "/api/v1/cards", payload, token, businessID)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("payload %d: status = %d, want %d", i, rec.Code, http.StatusBadRequest)
			}
		}
	})

	t.Run("credit figures are not editable", func(t *testing.T) {
		cardID := app.createCard(t, token, businessID, "Locked", 500000)

		// credit_limit is not a recognized update field and is ignored.
		rec := app.scopedRequest(http.MethodPut, "/api/v1/cards/"+cardID,
			`{"name":"Locked Still","credit_limit":9999999}`, token, businessID)
		if rec.Code != http.StatusOK {
			t.Fatalf("update card status = %d, body: %s", rec.Code, rec.Body.String())
		}
		card := parseJSON(t, rec)["card"].(map[string]interface{})
		if card["credit_limit"].(float64) != 500000 {
			t.Errorf("expected credit limit unchanged, got %v", card["credit_limit"])
		}
	})

	t.Run("list shows only active cards", func(t *testing.T) {
		retired := app.createCard(t, token, businessID, "Retired", 100000)
		rec := app.scopedRequest(http.MethodPut, "/api/v1/cards/"+retired,
			`{"is_active":false}`, token, businessID)
		if rec.Code != http.StatusOK {
			t.Fatalf("deactivate card status = %d", rec.Code)
		}

		rec = app.scopedRequest(http.MethodGet, "/api/v1/cards", "", token, businessID)
		if rec.Code != http.StatusOK {
			t.Fatalf("list cards status = %d", rec.Code)
		}
		body := parseJSON(t, rec)
		for _, item := range body["data"].([]interface{}) {
			card := item.(map[string]interface{})
			if card["id"].(string) == retired {
				t.Error("expected deactivated card to be hidden from the list")
			}
		}
	})
}

func TestRegistryPagination(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "pages@flow.test", "password123")
	businessID := app.createBusiness(t, token, "Page Co")

	for i := 0; i < 5; i++ {
		app.createFund(t, token, businessID, fmt.Sprintf("Fund %02d", i))
	}

	rec := app.scopedRequest(http.MethodGet, "/api/v1/funds?page=2&page_size=2", "", token, businessID)
	if rec.Code != http.StatusOK {
		t.Fatalf("list funds status = %d", rec.Code)
	}
	body := parseJSON(t, rec)
	if body["total_items"].(float64) != 5 {
		t.Errorf("expected 5 funds total, got %v", body["total_items"])
	}
	if body["page"].(float64) != 2 || len(body["data"].([]interface{})) != 2 {
		t.Errorf("expected page 2 with 2 items, got page %v with %d items",
			body["page"], len(body["data"].([]interface{})))
	}
	if body["total_pages"].(float64) != 3 {
		t.Errorf("expected 3 pages, got %v", body["total_pages"])
	}
}
