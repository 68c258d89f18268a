package receipt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleProcessReceipt validates and scores a submitted receipt
func (s *Server) handleProcessReceipt(w http.ResponseWriter, r *http.Request) {
	var receipt Receipt
	if err := json.NewDecoder(r.Body).Decode(&receipt); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
		return
	}

	id, err := s.service.ProcessReceipt(receipt)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":      "The receipt is invalid",
				"violations": validationErr.Violations,
			})
			return
		}
		slog.Error("Error processing receipt", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// handleGetPoints returns the points awarded for a previously processed receipt
func (s *Server) handleGetPoints(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Receipt ID required",
		})
		return
	}

	points, err := s.service.GetPoints(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": "No receipt found for that id",
			})
			return
		}
		slog.Error("Error getting points", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"points": points})
}
