package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/abhiwebdesign/dearyou-backend/internal/models"
)

// statusCheckDoc is the persisted shape: the timestamp is stored as an
// ISO-8601 string, not a BSON date.
type statusCheckDoc struct {
	models.StatusCheck `bson:",inline"`
	Timestamp          string `bson:"timestamp"`
}

// Root returns a static greeting.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// CreateStatusCheck records a health-check ping from a client.
func (h *Handler) CreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req models.StatusCheckCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrs := h.fieldErrors(req); fieldErrs != nil {
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  fieldErrs,
		})
		return
	}

	check := models.NewStatusCheck(req.ClientName)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc := statusCheckDoc{
		StatusCheck: check,
		Timestamp:   check.Timestamp.Format(time.RFC3339Nano),
	}
	if _, err := h.store.InsertOne(ctx, "status_checks", doc); err != nil {
		log.Printf("Failed to insert status check: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create status check")
		return
	}

	respondJSON(w, http.StatusOK, check)
}

// ListStatusChecks returns up to 1000 recorded status checks. Only recognized
// fields are read back from the documents; anything else (including the
// store's own _id) is dropped.
func (h *Handler) ListStatusChecks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	docs, err := h.store.Find(ctx, "status_checks", bson.M{}, bson.M{"_id": 0}, 1000)
	if err != nil {
		log.Printf("Failed to fetch status checks: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch status checks")
		return
	}

	checks := make([]models.StatusCheck, 0, len(docs))
	for _, doc := range docs {
		var check models.StatusCheck
		if v, ok := doc["id"].(string); ok {
			check.ID = v
		}
		if v, ok := doc["client_name"].(string); ok {
			check.ClientName = v
		}
		if v, ok := doc["timestamp"].(string); ok {
			ts, err := time.Parse(time.RFC3339Nano, v)
			if err != nil {
				log.Printf("Skipping unparseable status check timestamp %q: %v", v, err)
			} else {
				check.Timestamp = ts
			}
		}
		checks = append(checks, check)
	}

	respondJSON(w, http.StatusOK, checks)
}
