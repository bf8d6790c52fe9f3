package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/analytics/internal/config"
	"github.com/deppfellow/analytics/internal/errs"
	"github.com/deppfellow/analytics/internal/handler"
	"github.com/deppfellow/analytics/internal/model"
	"github.com/deppfellow/analytics/internal/server"
	"github.com/deppfellow/analytics/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type memoryContacts struct {
	mu       sync.Mutex
	contacts []model.Contact
	err      error
}

func (m *memoryContacts) CreateContact(_ context.Context, c *model.Contact) (*model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	stored := *c
	stored.ID = int64(len(m.contacts) + 1)
	stored.CreatedAt = time.Now().UTC()
	m.contacts = append(m.contacts, stored)
	return &stored, nil
}

type memoryDocuments struct {
	mu   sync.Mutex
	rows []model.RawJSONData
	err  error
}

func (m *memoryDocuments) CreateRawJSON(_ context.Context, document string) (*model.RawJSONData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row := model.RawJSONData{ID: int64(len(m.rows) + 1), JSONData: document}
	m.rows = append(m.rows, row)
	return &row, nil
}

func (m *memoryDocuments) GetFirstRawJSON(context.Context) (*model.RawJSONData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if len(m.rows) == 0 {
		return nil, nil
	}
	row := m.rows[0]
	return &row, nil
}

func (m *memoryDocuments) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type testApp struct {
	router    *echo.Echo
	contacts  *memoryContacts
	documents *memoryDocuments
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "local"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"http://localhost:3000"}},
		},
		Logger: &logger,
	}

	contacts := &memoryContacts{}
	documents := &memoryDocuments{}
	services := &service.Services{
		Contact: service.NewContactService(contacts, nil, &logger),
		RawJSON: service.NewRawJSONService(documents, &logger),
	}

	return &testApp{
		router:    NewRouter(s, handler.NewHandlers(s, services)),
		contacts:  contacts,
		documents: documents,
	}
}

func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func assertText(t *testing.T, rec *httptest.ResponseRecorder, status int, body string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %q)", rec.Code, status, rec.Body.String())
	}
	if got := rec.Body.String(); got != body {
		t.Errorf("body = %q, want %q", got, body)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextPlain) {
		t.Errorf("content type = %q, want text/plain", ct)
	}
}

func TestTestGet(t *testing.T) {
	app := newTestApp(t)

	assertText(t, app.do(http.MethodGet, "/data/test-get", ""), http.StatusOK, "GET works!")
	if app.documents.count() != 0 {
		t.Error("test-get must not touch storage")
	}
}

func TestGetRawJSONEmptyStore(t *testing.T) {
	app := newTestApp(t)

	assertText(t, app.do(http.MethodGet, "/data/raw", ""), http.StatusOK, "No data found")
}

func TestSaveThenGetRawJSON(t *testing.T) {
	app := newTestApp(t)

	assertText(t, app.do(http.MethodPost, "/data", `{"a": 1}`), http.StatusOK, "Saved!")
	assertText(t, app.do(http.MethodGet, "/data/raw", ""), http.StatusOK, `{"a":1}`)
}

func TestGetRawJSONReturnsFirstDocument(t *testing.T) {
	app := newTestApp(t)

	for _, doc := range []string{`{"x":"first"}`, `[1, 2, 3]`, `"third"`} {
		assertText(t, app.do(http.MethodPost, "/data", doc), http.StatusOK, "Saved!")
	}

	assertText(t, app.do(http.MethodGet, "/data/raw", ""), http.StatusOK, `{"x":"first"}`)
	if app.documents.count() != 3 {
		t.Errorf("stored %d documents, want 3", app.documents.count())
	}
}

func TestSaveRawJSONAcceptsNonObjects(t *testing.T) {
	app := newTestApp(t)

	for _, doc := range []string{`[true, null]`, `42`, `"text"`, `null`} {
		assertText(t, app.do(http.MethodPost, "/data", doc), http.StatusOK, "Saved!")
	}
	if app.documents.count() != 4 {
		t.Errorf("stored %d documents, want 4", app.documents.count())
	}
}

func TestSaveRawJSONMalformed(t *testing.T) {
	app := newTestApp(t)

	for _, doc := range []string{`{"a": 1`, `{"a":}`, `not json`} {
		rec := app.do(http.MethodPost, "/data", doc)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: status = %d, want 400", doc, rec.Code)
		}
	}

	if app.documents.count() != 0 {
		t.Errorf("malformed bodies created %d rows", app.documents.count())
	}
	assertText(t, app.do(http.MethodGet, "/data/raw", ""), http.StatusOK, "No data found")
}

func TestSaveRawJSONInvalidUTF8(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/data", "{\"a\":\"\xff\xfe\"}")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %q)", rec.Code, rec.Body.String())
	}
	if app.documents.count() != 0 {
		t.Errorf("invalid UTF-8 created %d rows", app.documents.count())
	}
}

func TestSaveRawJSONBodyTooLarge(t *testing.T) {
	app := newTestApp(t)

	doc := "[" + strings.Repeat("1,", 600000) + "1]"
	rec := app.do(http.MethodPost, "/data", doc)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	if app.documents.count() != 0 {
		t.Errorf("oversized body created %d rows", app.documents.count())
	}
}

func TestSaveRawJSONEmptyBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/data", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body errs.HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "body" {
		t.Errorf("errors = %+v", body.Errors)
	}
}

func TestSaveRawJSONStoreFailure(t *testing.T) {
	app := newTestApp(t)
	app.documents.err = errors.New("connection reset by peer")

	rec := app.do(http.MethodPost, "/data", `{"a":1}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Error("driver error leaked to the client")
	}
}

func TestConcurrentSavesKeepTheirOwnBodies(t *testing.T) {
	app := newTestApp(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			app.do(http.MethodPost, "/data", fmt.Sprintf(`{"n":%d}`, i))
		}(i)
	}
	wg.Wait()

	app.documents.mu.Lock()
	defer app.documents.mu.Unlock()

	if len(app.documents.rows) != n {
		t.Fatalf("stored %d documents, want %d", len(app.documents.rows), n)
	}
	var got []string
	for _, row := range app.documents.rows {
		got = append(got, row.JSONData)
	}
	sort.Strings(got)
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Fatalf("duplicate document %s: request payloads were shared", got[i])
		}
	}
}

func TestCreateContact(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/contacts",
		`{"name":"Ada Lovelace","email":"ada@example.com","message":"Hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["id"] != float64(1) {
		t.Errorf("id = %v, want 1", body["id"])
	}
	if body["name"] != "Ada Lovelace" || body["email"] != "ada@example.com" || body["message"] != "Hello" {
		t.Errorf("body = %v", body)
	}
	if _, ok := body["phoneNumber"]; ok {
		t.Error("absent phoneNumber should be omitted")
	}
	if _, ok := body["createdAt"]; !ok {
		t.Error("createdAt missing")
	}
}

func TestCreateContactAssignsDistinctIDs(t *testing.T) {
	app := newTestApp(t)

	ids := map[float64]bool{}
	for i := 0; i < 3; i++ {
		rec := app.do(http.MethodPost, "/api/contacts", `{"name":"Same"}`)
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		ids[body["id"].(float64)] = true
	}

	if len(ids) != 3 {
		t.Errorf("got ids %v, want 3 distinct", ids)
	}
}

func TestCreateContactMalformed(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/contacts", `{"name":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(app.contacts.contacts) != 0 {
		t.Error("malformed body must not create a contact")
	}
}

func TestCreateContactRequiresBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty body: status = %d, want 400", rec.Code)
	}

	rec = app.do(http.MethodPost, "/api/contacts", "null")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("null body: status = %d, want 400", rec.Code)
	}

	if len(app.contacts.contacts) != 0 {
		t.Errorf("blank bodies created %d contacts", len(app.contacts.contacts))
	}
}

func TestCreateContactUnsupportedMediaType(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader("Ada"))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", rec.Code)
	}
}

func TestStatusWithoutDatabase(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/status", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "unhealthy" {
		t.Errorf("status field = %v", body["status"])
	}
	if strings.Contains(rec.Body.String(), "not initialized") {
		t.Errorf("status response leaks the check error: %s", rec.Body.String())
	}
}

func TestDocsAndStaticAssets(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/docs", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/static/openapi.json") {
		t.Fatalf("docs: status %d body %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Cache-Control") != "no-cache" {
		t.Error("docs page should not be cached")
	}

	rec = app.do(http.MethodGet, "/static/openapi.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("openapi.json: status %d", rec.Code)
	}
	if !json.Valid(rec.Body.Bytes()) {
		t.Error("openapi.json is not valid JSON")
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestResponsesCarryRequestID(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/data/test-get", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}
