package server

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oselz/menupush/internal/catalog"
)

func newTestServer(t *testing.T, cat *catalog.Catalog) *Server {
	t.Helper()

	s, err := New(&Config{Host: "127.0.0.1", Port: 0, LogLevel: ""}, cat)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func multipartBody(t *testing.T, fields map[string]string, filename, fileContent string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			t.Fatalf("WriteField(%q) failed: %v", name, err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("csv_file", filename)
		if err != nil {
			t.Fatalf("CreateFormFile failed: %v", err)
		}
		if _, err := io.WriteString(fw, fileContent); err != nil {
			t.Fatalf("writing file part failed: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer failed: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHandleUploadStreamsProgress(t *testing.T) {
	cat := catalog.New(map[string][]catalog.Location{
		"Acme Burgers": {{Name: "Downtown", Address: "12 High St"}},
	})
	s := newTestServer(t, cat)

	body, contentType := multipartBody(t,
		map[string]string{"brand": "Acme Burgers", "location": "12 High St"},
		"menu.csv",
		"Name,Category\nBurger,Mains\n",
	)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.handleUpload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}

	got := rec.Body.String()
	for _, want := range []string{
		"📦 Menu upload for Acme Burgers — 12 High St\n",
		"Parsing row 1\n",
		"📁 Adding category: Mains\n",
		"  ➕ Adding item: Burger\n",
		"✅ Done uploading all items!\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("response missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "⚠ Unknown") {
		t.Errorf("unexpected catalog warning:\n%s", got)
	}
}

func TestHandleUploadUnknownBrandWarns(t *testing.T) {
	cat := catalog.New(map[string][]catalog.Location{
		"Acme Burgers": {{Name: "Downtown", Address: "12 High St"}},
	})
	s := newTestServer(t, cat)

	body, contentType := multipartBody(t,
		map[string]string{"brand": "Nope Pizza", "location": "1 Elm Rd"},
		"menu.csv",
		"Name,Category\nMargherita,Pizza\n",
	)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.handleUpload(rec, req)

	got := rec.Body.String()
	if !strings.Contains(got, `⚠ Unknown brand "Nope Pizza"`) {
		t.Errorf("missing unknown-brand warning:\n%s", got)
	}
	if !strings.Contains(got, "✅ Done uploading all items!\n") {
		t.Errorf("ingest did not run after warning:\n%s", got)
	}
}

func TestHandleUploadRejectsNonCSV(t *testing.T) {
	s := newTestServer(t, nil)

	body, contentType := multipartBody(t,
		map[string]string{"brand": "Acme", "location": "HQ"},
		"menu.xlsx",
		"not a csv",
	)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.handleUpload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleUploadRejectsMissingFields(t *testing.T) {
	s := newTestServer(t, nil)

	body, contentType := multipartBody(t,
		map[string]string{"brand": "Acme"},
		"menu.csv",
		"Name,Category\n",
	)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.handleUpload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleUploadRejectsGet(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/upload", nil)
	rec := httptest.NewRecorder()

	s.handleUpload(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleUploadLoginAction(t *testing.T) {
	s := newTestServer(t, nil)

	body, contentType := multipartBody(t,
		map[string]string{"action": "login"},
		"", "",
	)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.handleUpload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "✅ Logged in") {
		t.Errorf("unexpected login response: %s", rec.Body.String())
	}
}
