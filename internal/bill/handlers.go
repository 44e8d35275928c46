package bill

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// writeJSON encodes v with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleRoot reports that the server is up
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "Bill parsing server is running",
	})
}

// handleHealth is the liveness check. It has no side effects.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// handleParseBill accepts one bill document upload and returns the extracted
// fields. A request without a document is a client error; a document the
// adapter cannot read is a server error with diagnostic detail.
func (s *Server) handleParseBill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUploadSize); err != nil {
		slog.Error("Error parsing multipart form", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "No PDF file provided",
		})
		return
	}

	f, header, err := r.FormFile("pdf")
	if err != nil {
		slog.Error("Error getting file from form", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "No PDF file provided",
		})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("Error reading file data", "error", err, "filename", header.Filename)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to parse PDF",
			"details": "error reading uploaded file",
		})
		return
	}

	bill, err := s.service.ParseBill(data)
	if err != nil {
		slog.Error("Error parsing bill", "filename", header.Filename, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to parse PDF",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, bill)
}
