package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAdminFlow_LoginRequired(t *testing.T) {
	app := setupApp(t)
	weddingID := app.createWedding(t)
	categoryID := app.createCategory(t, weddingID, "Extras", 100000)

	// No token
	rec := app.request("PUT", fmt.Sprintf("/api/v1/admin/categories/%.0f/actual", categoryID),
		`{"actual_amount":5000}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d: %s", rec.Code, rec.Body.String())
	}

	// Bad secret
	rec = app.request("POST", "/api/v1/admin/login", `{"secret":"wrong"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong secret, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminFlow_OverrideAndVerify(t *testing.T) {
	app := setupApp(t)
	weddingID := app.createWedding(t)
	categoryID := app.createCategory(t, weddingID, "Extras", 100000)
	token := app.adminToken(t)

	// A fresh wedding's ledger is consistent
	rec := app.request("POST", fmt.Sprintf("/api/v1/admin/weddings/%.0f/verify", weddingID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 verifying fresh ledger, got %d: %s", rec.Code, rec.Body.String())
	}

	// Force the stored total away from the booking sum
	rec = app.request("PUT", fmt.Sprintf("/api/v1/admin/categories/%.0f/actual", categoryID),
		`{"actual_amount":5000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 overriding actual, got %d: %s", rec.Code, rec.Body.String())
	}

	// Verification now reports the drift
	rec = app.request("POST", fmt.Sprintf("/api/v1/admin/weddings/%.0f/verify", weddingID), "", token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 after override, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"].(string) != "LEDGER_CORRUPT" {
		t.Errorf("expected LEDGER_CORRUPT code, got %s", errObj["code"])
	}

	// Override back to zero restores consistency
	rec = app.request("PUT", fmt.Sprintf("/api/v1/admin/categories/%.0f/actual", categoryID),
		`{"actual_amount":0}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 restoring actual, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", fmt.Sprintf("/api/v1/admin/weddings/%.0f/verify", weddingID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after restore, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminFlow_VendorVerification(t *testing.T) {
	app := setupApp(t)
	token := app.adminToken(t)

	rec := app.request("POST", "/api/v1/vendors",
		`{"name":"Bloom Studio","category":"flowers","location":"Haifa","price_range":"$$$"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating vendor, got %d: %s", rec.Code, rec.Body.String())
	}
	vendor := parseJSON(t, rec)["vendor"].(map[string]interface{})
	vendorID := vendor["id"].(float64)
	if vendor["is_verified"].(bool) {
		t.Error("expected new vendor unverified")
	}

	rec = app.request("PUT", fmt.Sprintf("/api/v1/admin/vendors/%.0f/verify", vendorID),
		`{"verified":true}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 verifying vendor, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", fmt.Sprintf("/api/v1/vendors/%.0f", vendorID), "", "")
	vendor = parseJSON(t, rec)["vendor"].(map[string]interface{})
	if !vendor["is_verified"].(bool) {
		t.Error("expected vendor verified after admin toggle")
	}
}
