package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jailbreak-0/iou-tracker/internal/ads"
	"github.com/jailbreak-0/iou-tracker/internal/auth"
	"github.com/jailbreak-0/iou-tracker/internal/category"
	"github.com/jailbreak-0/iou-tracker/internal/contacts"
	"github.com/jailbreak-0/iou-tracker/internal/models"
	"github.com/jailbreak-0/iou-tracker/internal/notify"
	"github.com/jailbreak-0/iou-tracker/internal/reminder"
	"github.com/jailbreak-0/iou-tracker/internal/service"
	"github.com/jailbreak-0/iou-tracker/internal/storage/sqlite"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	notifier := notify.NewLocal(notify.SinkFunc(func(string, string, string) {}))
	scheduler := reminder.NewScheduler(store, notifier, true)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return NewServer(
		":0",
		service.NewRecordService(store, scheduler),
		service.NewSettingsService(store, scheduler, tokens, auth.StaticBiometric{Hardware: true, Enrolled: true, Accept: true}),
		service.NewCategoryService(category.NewManager(store), true),
		ads.NewGate(store, true),
		contacts.NewFileProvider(""),
		tokens,
	)
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRecordEndpoints(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	t.Run("create and fetch", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/records",
			`{"direction":"LENT","amount":"50.50","counterpartyName":"Alice"}`, nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}

		var created models.DebtRecord
		if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected an id")
		}

		got := doJSON(t, h, http.MethodGet, "/api/v1/records/"+created.ID, "", nil)
		if got.Code != http.StatusOK {
			t.Errorf("get status = %d", got.Code)
		}

		list := doJSON(t, h, http.MethodGet, "/api/v1/records", "", nil)
		if list.Code != http.StatusOK {
			t.Errorf("list status = %d", list.Code)
		}
	})

	t.Run("validation error is 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/records",
			`{"direction":"LENT","amount":"-1","counterpartyName":"Alice"}`, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/records/nope", "", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("settle", func(t *testing.T) {
		created := createRecord(t, h, `{"direction":"BORROWED","amount":"20","counterpartyName":"Bob"}`)

		rec := doJSON(t, h, http.MethodPost, "/api/v1/records/"+created.ID+"/settle", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var settled models.DebtRecord
		if err := json.NewDecoder(rec.Body).Decode(&settled); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if !settled.Settled {
			t.Error("record should be settled")
		}
	})

	t.Run("summary", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/summary", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var sum models.Summary
		if err := json.NewDecoder(rec.Body).Decode(&sum); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if sum.TotalOwedToUser.String() != "50.5" {
			t.Errorf("TotalOwedToUser = %s, want 50.5", sum.TotalOwedToUser)
		}
	})

	t.Run("delete", func(t *testing.T) {
		created := createRecord(t, h, `{"direction":"LENT","amount":"5","counterpartyName":"Carol"}`)
		rec := doJSON(t, h, http.MethodDelete, "/api/v1/records/"+created.ID, "", nil)
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", rec.Code)
		}
	})
}

func createRecord(t *testing.T, h http.Handler, body string) models.DebtRecord {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/records", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created models.DebtRecord
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	return created
}

func TestPinLockGuardsDataRoutes(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	// Unlocked by default.
	if rec := doJSON(t, h, http.MethodGet, "/api/v1/records", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("status before lock = %d", rec.Code)
	}

	if rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/pin", `{"pin":"1234"}`, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("set pin status = %d", rec.Code)
	}

	t.Run("locked without token", func(t *testing.T) {
		if rec := doJSON(t, h, http.MethodGet, "/api/v1/records", "", nil); rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("auth status stays reachable", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/auth/status", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var status map[string]bool
		if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if !status["pinRequired"] {
			t.Error("pinRequired should be true")
		}
	})

	t.Run("wrong pin is 401", func(t *testing.T) {
		if rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/pin/verify", `{"pin":"0000"}`, nil); rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("verify issues a working token", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/pin/verify", `{"pin":"1234"}`, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp tokenResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}

		authed := doJSON(t, h, http.MethodGet, "/api/v1/records", "",
			map[string]string{"Authorization": "Bearer " + resp.Token})
		if authed.Code != http.StatusOK {
			t.Errorf("status with token = %d", authed.Code)
		}
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/records", "",
			map[string]string{"Authorization": "Bearer not-a-token"})
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestCategoryEndpoints(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	t.Run("list seeds defaults", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/categories", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var cats []models.Category
		if err := json.NewDecoder(rec.Body).Decode(&cats); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if len(cats) == 0 {
			t.Error("expected seeded categories")
		}
	})

	t.Run("duplicate name is 409", func(t *testing.T) {
		if rec := doJSON(t, h, http.MethodPost, "/api/v1/categories", `{"name":"Gym"}`, nil); rec.Code != http.StatusCreated {
			t.Fatalf("create status = %d", rec.Code)
		}
		if rec := doJSON(t, h, http.MethodPost, "/api/v1/categories", `{"name":"gym"}`, nil); rec.Code != http.StatusConflict {
			t.Errorf("duplicate status = %d, want 409", rec.Code)
		}
	})

	t.Run("deleting the default is 409", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodDelete, "/api/v1/categories/"+category.DefaultCategoryID, "", nil)
		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", rec.Code)
		}
	})
}

func TestExportEndpoint(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()
	createRecord(t, h, `{"direction":"LENT","amount":"42","counterpartyName":"Dana"}`)

	t.Run("csv", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/export?format=csv", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("Content-Type = %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
			t.Errorf("Content-Disposition = %q", cd)
		}
		if !strings.Contains(rec.Body.String(), "Dana") {
			t.Error("export should contain the record")
		}
	})

	t.Run("html", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/export?format=html", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("Content-Type = %q", ct)
		}
	})

	t.Run("unknown format is 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/export?format=pdf", "", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestAdsEndpoints(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/v1/ads/status", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var status map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !status["showAds"] {
		t.Error("ads should show before the unlock purchase")
	}

	if rec := doJSON(t, h, http.MethodPost, "/api/v1/purchase/unlock", `{"transactionId":"txn-1"}`, nil); rec.Code != http.StatusOK {
		t.Fatalf("unlock status = %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/ads/status", "", nil)
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if status["showAds"] {
		t.Error("ads should be suppressed after the unlock purchase")
	}
}

func TestContactsPermissionDenied(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/contacts", "", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Handler(), http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
