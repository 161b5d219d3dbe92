package users

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/robiyakhmed13-ux/hamyon-api/internal/audit"
)

type memAudit struct {
	entries []audit.Entry
	err     error
}

func (m *memAudit) Write(_ context.Context, e audit.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, e)
	return nil
}

type memStore struct {
	languages map[int64]string
	err       error
}

func (m *memStore) SetLanguage(_ context.Context, telegramID int64, language string) error {
	if m.err != nil {
		return m.err
	}
	if m.languages == nil {
		m.languages = map[int64]string{}
	}
	m.languages[telegramID] = language
	return nil
}

func (m *memStore) GetLanguage(_ context.Context, telegramID int64) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if lang, ok := m.languages[telegramID]; ok {
		return lang, nil
	}
	return DefaultLanguage, nil
}

func newTestApp(store Store, auditLog AuditLog) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	h := NewHandler(store, auditLog)
	app.Post("/users/lang", h.SetLanguage)
	app.Get("/users/lang", h.GetLanguage)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestSetThenGetLanguageRoundTrip(t *testing.T) {
	for _, lang := range []string{"uz", "ru", "en"} {
		store := &memStore{}
		app := newTestApp(store, nil)

		status, body := doJSON(t, app, "POST", "/users/lang",
			`{"telegram_id": 42, "language": "`+lang+`"}`)
		if status != fiber.StatusOK {
			t.Fatalf("set %s: status = %d, want 200", lang, status)
		}
		if body["ok"] != true || body["language"] != lang {
			t.Errorf("set %s: body = %v", lang, body)
		}

		status, body = doJSON(t, app, "GET", "/users/lang?telegram_id=42", "")
		if status != fiber.StatusOK {
			t.Fatalf("get %s: status = %d, want 200", lang, status)
		}
		if body["language"] != lang {
			t.Errorf("get = %v, want %s", body["language"], lang)
		}
	}
}

func TestSetLanguageIdempotent(t *testing.T) {
	store := &memStore{}
	app := newTestApp(store, nil)

	for i := 0; i < 3; i++ {
		status, _ := doJSON(t, app, "POST", "/users/lang", `{"telegram_id": 42, "language": "ru"}`)
		if status != fiber.StatusOK {
			t.Fatalf("call %d: status = %d, want 200", i, status)
		}
	}
	if store.languages[42] != "ru" {
		t.Errorf("stored = %q, want ru", store.languages[42])
	}
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	store := &memStore{}
	app := newTestApp(store, nil)

	status, _ := doJSON(t, app, "POST", "/users/lang", `{"telegram_id": 42, "language": "fr"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", status)
	}
	if len(store.languages) != 0 {
		t.Errorf("store received writes for invalid language")
	}
}

func TestGetLanguageUnknownUserDefaults(t *testing.T) {
	app := newTestApp(&memStore{}, nil)

	status, body := doJSON(t, app, "GET", "/users/lang?telegram_id=9999", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["language"] != DefaultLanguage {
		t.Errorf("language = %v, want %s", body["language"], DefaultLanguage)
	}
}

func TestGetLanguageBadID(t *testing.T) {
	app := newTestApp(&memStore{}, nil)

	for _, q := range []string{"", "?telegram_id=abc", "?telegram_id=-5"} {
		status, _ := doJSON(t, app, "GET", "/users/lang"+q, "")
		if status != fiber.StatusUnprocessableEntity {
			t.Errorf("query %q: status = %d, want 422", q, status)
		}
	}
}

func TestSetLanguageRecordsAudit(t *testing.T) {
	auditLog := &memAudit{}
	app := newTestApp(&memStore{}, auditLog)

	status, _ := doJSON(t, app, "POST", "/users/lang", `{"telegram_id": 42, "language": "ru"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	if len(auditLog.entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(auditLog.entries))
	}
	e := auditLog.entries[0]
	if e.Action != "user.set_language" {
		t.Errorf("action = %q, want user.set_language", e.Action)
	}
	if e.EntityType != "user" || e.TelegramID != 42 {
		t.Errorf("entry = %+v", e)
	}
	if !strings.Contains(string(e.Metadata), "ru") {
		t.Errorf("metadata = %s, want language recorded", e.Metadata)
	}
}

func TestSetLanguageAuditFailureDoesNotFailRequest(t *testing.T) {
	store := &memStore{}
	app := newTestApp(store, &memAudit{err: errors.New("audit table missing")})

	status, body := doJSON(t, app, "POST", "/users/lang", `{"telegram_id": 42, "language": "en"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["ok"] != true {
		t.Errorf("body = %v", body)
	}
	if store.languages[42] != "en" {
		t.Errorf("stored = %q, want en", store.languages[42])
	}
}

func TestSetLanguageNoAuditOnValidationFailure(t *testing.T) {
	auditLog := &memAudit{}
	app := newTestApp(&memStore{}, auditLog)

	status, _ := doJSON(t, app, "POST", "/users/lang", `{"telegram_id": 42, "language": "fr"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", status)
	}
	if len(auditLog.entries) != 0 {
		t.Errorf("audit entries = %d, want 0", len(auditLog.entries))
	}
}
