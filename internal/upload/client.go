package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/oselz/menupush/internal/logging"
	"go.uber.org/zap"
)

// Multipart field names the ingest server expects.
const (
	FieldFile     = "csv_file"
	FieldBrand    = "brand"
	FieldLocation = "location"
)

// DefaultChunkSize is the read buffer size for the streaming body.
const DefaultChunkSize = 4096

// Sink receives the live log output of one upload.
//
// Append is called once per decoded chunk, in arrival order. SetError is
// called at most once, only when the exchange fails before any log output
// could stream (it replaces whatever the sink was showing).
type Sink interface {
	Append(text string)
	SetError(message string)
}

// Request is the form state of one submission. It is built fresh per
// submit and not reused.
type Request struct {
	Brand    string
	Location string // the selected location's address
	FileName string
	File     io.Reader
}

// Client performs streaming menu uploads against one ingest endpoint.
type Client struct {
	// Endpoint is the full URL of the upload endpoint
	Endpoint string

	// HTTPClient is the underlying HTTP client. It deliberately has no
	// overall timeout: the response streams for as long as ingestion runs.
	HTTPClient *http.Client

	// ChunkSize is the read buffer size for the response body
	ChunkSize int
}

// NewClient creates a client for the given upload endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{},
		ChunkSize:  DefaultChunkSize,
	}
}

// Upload submits the request and streams the server's progress log into
// the sink until the body ends.
//
// On a transport failure or a non-2xx status the sink receives a single
// terminal line and the body is never read. A read failure mid-stream
// appends a "Connection lost" line after whatever already arrived. The
// returned error mirrors what the sink was told; a nil return means the
// stream ended normally.
func (c *Client) Upload(ctx context.Context, req Request, sink Sink) error {
	body, contentType, err := encodeMultipart(req)
	if err != nil {
		sink.SetError("❌ Upload failed: " + err.Error())
		return NewNetworkError("failed to encode multipart body", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, body)
	if err != nil {
		sink.SetError("❌ Upload failed: " + err.Error())
		return NewNetworkError("failed to create upload request", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	logging.Info("Submitting menu upload",
		zap.String("endpoint", c.Endpoint),
		zap.String("brand", req.Brand),
		zap.String("location", req.Location),
		zap.String("file", req.FileName),
	)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		sink.SetError("❌ Upload failed: " + err.Error())
		return NewNetworkError("upload request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Outright failure: surface the reason phrase, consume nothing
		reason := reasonPhrase(resp)
		sink.SetError("❌ Upload failed: " + reason)
		return NewHTTPError(resp.StatusCode, reason)
	}

	return c.streamBody(resp.Body, sink)
}

// streamBody reads the response incrementally, decoding each chunk and
// appending it to the sink as soon as it arrives.
func (c *Client) streamBody(body io.Reader, sink Sink) error {
	chunkSize := c.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var dec Decoder
	buf := make([]byte, chunkSize)

	for {
		n, err := body.Read(buf)
		if n > 0 {
			if text := dec.Write(buf[:n]); text != "" {
				sink.Append(text)
			}
		}
		if err == io.EOF {
			if tail := dec.Flush(); tail != "" {
				sink.Append(tail)
			}
			logging.Debug("Upload stream ended")
			return nil
		}
		if err != nil {
			if tail := dec.Flush(); tail != "" {
				sink.Append(tail)
			}
			// The log already holds real progress; append a terminal
			// line instead of wiping it
			sink.Append("\n⚠ Connection lost: " + err.Error() + "\n")
			logging.Warn("Upload stream interrupted", zap.Error(err))
			return NewStreamError("connection lost while streaming upload log", err)
		}
	}
}

// encodeMultipart packages the form state into a multipart/form-data body.
// Menu CSVs are small, so the body is buffered rather than piped.
func encodeMultipart(req Request) (io.Reader, string, error) {
	if req.File == nil {
		return nil, "", fmt.Errorf("no file selected")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(FieldFile, req.FileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, req.File); err != nil {
		return nil, "", err
	}
	if err := w.WriteField(FieldBrand, req.Brand); err != nil {
		return nil, "", err
	}
	if err := w.WriteField(FieldLocation, req.Location); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
