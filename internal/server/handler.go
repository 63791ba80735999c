package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/oselz/menupush/internal/logging"
	"github.com/oselz/menupush/internal/upload"
	"github.com/oselz/menupush/internal/urls"
	"go.uber.org/zap"
)

// maxUploadMemory bounds how much of the multipart body is held in
// memory before spilling to temp files.
const maxUploadMemory = 32 << 20

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "menupush ingest server\n\nPOST /upload with fields %s, %s, %s\n",
		upload.FieldFile, upload.FieldBrand, upload.FieldLocation)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, r.ContentLength)

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "malformed multipart form", http.StatusBadRequest)
		return
	}

	// The upload form doubles as the provider login form.
	if r.FormValue("action") == "login" {
		s.handleLogin(w, r)
		return
	}

	file, header, err := r.FormFile(upload.FieldFile)
	if err != nil {
		http.Error(w, "missing "+upload.FieldFile+" field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		http.Error(w, "only .csv files are accepted", http.StatusBadRequest)
		return
	}

	brand := r.FormValue(upload.FieldBrand)
	location := r.FormValue(upload.FieldLocation)
	if brand == "" || location == "" {
		http.Error(w, "brand and location are required", http.StatusBadRequest)
		return
	}

	logging.LogUpload(r.RemoteAddr, brand, location, header.Filename)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	emit := func(line string) error {
		if _, err := fmt.Fprint(w, line); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	}

	// The status is committed once streaming starts; from here every
	// problem is reported inside the stream.
	if warn := s.checkCatalog(brand, location); warn != "" {
		if err := emit(warn); err != nil {
			return
		}
	}

	if err := IngestCSV(file, brand, location, emit); err != nil {
		logging.Warn("Upload ended early",
			zap.String("remote_addr", r.RemoteAddr),
			zap.String("brand", brand),
			zap.Error(err),
		)
		return
	}

	logging.LogHTTPResponse(r.RemoteAddr, http.StatusOK, 0)
}

// checkCatalog returns a warning line when the submitted brand/location
// pair is not in the server's catalog. Locations are matched by address,
// which is what the client submits; the brand disambiguates addresses
// shared between brands.
func (s *Server) checkCatalog(brand, location string) string {
	if s.catalog == nil {
		return ""
	}
	locs := s.catalog.LocationsFor(brand)
	if locs == nil {
		return fmt.Sprintf("⚠ Unknown brand %q — ingesting anyway\n", brand)
	}
	for _, loc := range locs {
		if loc.Address == location {
			return ""
		}
	}
	return fmt.Sprintf("⚠ Unknown location %q for brand %q — ingesting anyway\n", location, brand)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	logging.Info("Provider login requested",
		zap.String("remote_addr", r.RemoteAddr),
	)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "✅ Logged in — manage menus at %s\n", urls.ProviderMenuOverview)
}
