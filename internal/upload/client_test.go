package upload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// recordingSink captures everything the client delivers
type recordingSink struct {
	appended []string
	errorMsg string
	errorSet bool
}

func (s *recordingSink) Append(text string) { s.appended = append(s.appended, text) }
func (s *recordingSink) SetError(message string) {
	s.errorMsg = message
	s.errorSet = true
}

func (s *recordingSink) content() string { return strings.Join(s.appended, "") }

func testRequest() Request {
	return Request{
		Brand:    "Acme",
		Location: "1 Main St",
		FileName: "menu.csv",
		File:     strings.NewReader("Category,Name\nMains,Burger\n"),
	}
}

func TestUpload_StreamsChunksInOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		w.Write([]byte("Parsing row 1\n"))
		flusher.Flush()
		w.Write([]byte("Parsing row 2\n"))
		flusher.Flush()
	}))
	defer server.Close()

	sink := &recordingSink{}
	client := NewClient(server.URL)

	if err := client.Upload(context.Background(), testRequest(), sink); err != nil {
		t.Fatalf("Upload() error = %v, want nil", err)
	}

	if sink.errorSet {
		t.Errorf("SetError called with %q, want no error", sink.errorMsg)
	}

	want := "Parsing row 1\nParsing row 2\n"
	if sink.content() != want {
		t.Errorf("streamed content = %q, want %q", sink.content(), want)
	}
}

func TestUpload_SendsMultipartFields(t *testing.T) {
	var gotBrand, gotLocation, gotFileName, gotFileBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotBrand = r.FormValue(FieldBrand)
		gotLocation = r.FormValue(FieldLocation)

		file, header, err := r.FormFile(FieldFile)
		if err != nil {
			t.Errorf("FormFile: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFileName = header.Filename

		buf := make([]byte, 256)
		n, _ := file.Read(buf)
		gotFileBody = string(buf[:n])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := &recordingSink{}
	client := NewClient(server.URL)

	if err := client.Upload(context.Background(), testRequest(), sink); err != nil {
		t.Fatalf("Upload() error = %v, want nil", err)
	}

	if gotBrand != "Acme" {
		t.Errorf("brand field = %q, want Acme", gotBrand)
	}
	if gotLocation != "1 Main St" {
		t.Errorf("location field = %q, want 1 Main St", gotLocation)
	}
	if gotFileName != "menu.csv" {
		t.Errorf("file name = %q, want menu.csv", gotFileName)
	}
	if !strings.Contains(gotFileBody, "Mains,Burger") {
		t.Errorf("file body = %q, want CSV content", gotFileBody)
	}
}

func TestUpload_ServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	sink := &recordingSink{}
	client := NewClient(server.URL)

	err := client.Upload(context.Background(), testRequest(), sink)
	if err == nil {
		t.Fatal("Upload() error = nil, want HTTP error")
	}
	if !IsHTTPError(err) {
		t.Errorf("error should be HTTP error, got %v", err)
	}

	// The log shows exactly the reason phrase and nothing streams
	if sink.errorMsg != "❌ Upload failed: Internal Server Error" {
		t.Errorf("SetError = %q, want %q", sink.errorMsg, "❌ Upload failed: Internal Server Error")
	}
	if len(sink.appended) != 0 {
		t.Errorf("Append called %d times after rejection, want 0", len(sink.appended))
	}
}

func TestUpload_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	sink := &recordingSink{}
	client := NewClient(server.URL)

	err := client.Upload(context.Background(), testRequest(), sink)
	if err == nil {
		t.Fatal("Upload() error = nil, want network error")
	}
	if !IsNetworkError(err) {
		t.Errorf("error should be network error, got %v", err)
	}
	if !sink.errorSet || !strings.HasPrefix(sink.errorMsg, "❌ Upload failed: ") {
		t.Errorf("SetError = %q, want upload failed line", sink.errorMsg)
	}
}

func TestUpload_SplitMultiByteAcrossChunks(t *testing.T) {
	// "✅ Done\n" with the checkmark split between two flushed writes
	line := []byte("✅ Done\n")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		w.WriteHeader(http.StatusOK)

		w.Write(line[:2]) // first two bytes of the three byte checkmark
		flusher.Flush()
		w.Write(line[2:])
		flusher.Flush()
	}))
	defer server.Close()

	sink := &recordingSink{}
	client := NewClient(server.URL)

	if err := client.Upload(context.Background(), testRequest(), sink); err != nil {
		t.Fatalf("Upload() error = %v, want nil", err)
	}

	if sink.content() != "✅ Done\n" {
		t.Errorf("streamed content = %q, want %q", sink.content(), "✅ Done\n")
	}
}

func TestUpload_MidStreamDisconnect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Parsing row 1\n"))
		flusher.Flush()

		// Kill the connection without a terminal chunk
		conn, _, err := w.(http.Hijacker).Hijack()
		if err != nil {
			t.Errorf("Hijack: %v", err)
			return
		}
		conn.Close()
	}))
	defer server.Close()

	sink := &recordingSink{}
	client := NewClient(server.URL)

	err := client.Upload(context.Background(), testRequest(), sink)
	if err == nil {
		t.Fatal("Upload() error = nil, want stream error")
	}
	if !IsStreamError(err) {
		t.Errorf("error should be stream error, got %v", err)
	}

	// Progress received before the drop is preserved, terminal line follows
	if !strings.HasPrefix(sink.content(), "Parsing row 1\n") {
		t.Errorf("streamed content lost progress: %q", sink.content())
	}
	if !strings.Contains(sink.content(), "Connection lost") {
		t.Errorf("streamed content = %q, want Connection lost line", sink.content())
	}
	if sink.errorSet {
		t.Errorf("SetError called mid-stream, should append instead: %q", sink.errorMsg)
	}
}

func TestUpload_NoFile(t *testing.T) {
	sink := &recordingSink{}
	client := NewClient("http://127.0.0.1:0/upload")

	req := testRequest()
	req.File = nil

	if err := client.Upload(context.Background(), req, sink); err == nil {
		t.Fatal("Upload() error = nil, want error for missing file")
	}
	if !sink.errorSet {
		t.Error("SetError not called for missing file")
	}
}
