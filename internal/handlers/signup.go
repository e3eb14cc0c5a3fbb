package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/abhiwebdesign/dearyou-backend/internal/mailer"
	"github.com/abhiwebdesign/dearyou-backend/internal/models"
)

type emailSignupDoc struct {
	models.EmailSignup `bson:",inline"`
	Timestamp          string `bson:"timestamp"`
}

type emailSignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EmailSignup records an early-access signup and notifies the operator.
// Duplicate signups are accepted as-is.
func (h *Handler) EmailSignup(w http.ResponseWriter, r *http.Request) {
	var req models.EmailSignup
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

	timestamp := time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc := emailSignupDoc{
		EmailSignup: req,
		Timestamp:   timestamp.Format(time.RFC3339Nano),
	}
	signupID, err := h.store.InsertOne(ctx, "email_signups", doc)
	if err != nil {
		log.Printf("Error processing email signup: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to process signup")
		return
	}

	if err := h.mail.Send("New Early Access Signup - DearYou", signupEmailBody(req.Email, timestamp), h.notifyEmail); err != nil {
		log.Printf("Error processing email signup: %v", err)
		if errors.Is(err, mailer.ErrNotConfigured) {
			respondError(w, http.StatusInternalServerError, "Email service not configured")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to process signup")
		return
	}

	log.Printf("Email signup saved: %s with ID: %s", req.Email, signupID)

	respondJSON(w, http.StatusOK, emailSignupResponse{
		Success: true,
		Message: "You're on the list! We'll notify you when Identity Kits launch.",
	})
}

func signupEmailBody(email string, timestamp time.Time) string {
	return fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
		<h2 style="color: #d4af37;">New Early Access Signup</h2>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Signed up at:</strong> %s</p>
		<hr>
		<p><em>Add this email to your early access list for Identity Kits!</em></p>
	</body>
	</html>
	`, email, timestamp.Format(time.RFC3339))
}
