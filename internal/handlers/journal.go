package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/abhiwebdesign/dearyou-backend/internal/mailer"
	"github.com/abhiwebdesign/dearyou-backend/internal/models"
)

type journalSubmissionDoc struct {
	models.JournalSubmission `bson:",inline"`
	Timestamp                string `bson:"timestamp"`
}

type submitJournalResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
}

// SubmitJournal handles the journal personalization form: persist the answers,
// then notify the operator by email. The write is committed before the email
// is attempted, so a send failure still leaves the record in place even though
// the caller gets an error.
func (h *Handler) SubmitJournal(w http.ResponseWriter, r *http.Request) {
	var req models.JournalSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fieldErrs := h.fieldErrors(req)
	// An empty obstacles list is fine, a missing one is not; the required tag
	// can't tell them apart so the nil check lives here.
	if req.Obstacles == nil {
		if fieldErrs == nil {
			fieldErrs = make(map[string]string)
		}
		fieldErrs["obstacles"] = "field required"
	}
	if fieldErrs != nil {
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

	doc := journalSubmissionDoc{
		JournalSubmission: req,
		Timestamp:         timestamp.Format(time.RFC3339Nano),
	}
	submissionID, err := h.store.InsertOne(ctx, "journal_submissions", doc)
	if err != nil {
		log.Printf("Error processing journal submission: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to process submission")
		return
	}

	name := req.Name
	if name == "" {
		name = "Anonymous"
	}
	subject := fmt.Sprintf("New Journal Submission - %s", name)

	if err := h.mail.Send(subject, journalEmailBody(req, timestamp), h.notifyEmail); err != nil {
		log.Printf("Error processing journal submission: %v", err)
		if errors.Is(err, mailer.ErrNotConfigured) {
			respondError(w, http.StatusInternalServerError, "Email service not configured")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to process submission")
		return
	}

	log.Printf("Journal submission saved with ID: %s", submissionID)

	respondJSON(w, http.StatusOK, submitJournalResponse{
		Success:      true,
		Message:      "Your personalized journal request has been received! We'll start crafting your journal.",
		SubmissionID: submissionID,
	})
}

func journalEmailBody(s models.JournalSubmission, timestamp time.Time) string {
	orDefault := func(v string) string {
		if v == "" {
			return "Not provided"
		}
		return v
	}

	return fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
		<h2 style="color: #d4af37;">New DearYou Journal Submission</h2>

		<h3>📝 Identity Snapshot</h3>
		<p><strong>Current State:</strong> %s</p>
		<p><strong>Current Feeling:</strong> %s</p>

		<h3>🎯 Goals & Future Self</h3>
		<p><strong>Main Goal (90 days):</strong> %s</p>
		<p><strong>Why Important:</strong> %s</p>
		<p><strong>Future Identity:</strong> %s</p>

		<h3>🚧 Obstacles & Patterns</h3>
		<p><strong>Obstacles:</strong> %s</p>
		<p><strong>Remove Forever:</strong> %s</p>

		<h3>💭 Emotional Anchors</h3>
		<p><strong>Motivation Type:</strong> %s</p>
		<p><strong>Closest Sentence:</strong> %s</p>

		<h3>🎨 Personalization Details</h3>
		<p><strong>Aesthetic:</strong> %s</p>
		<p><strong>Want Photo:</strong> %s</p>
		<p><strong>Affirmation Style:</strong> %s</p>

		<h3>📖 Ritual Style</h3>
		<p><strong>Guide Style:</strong> %s</p>
		<p><strong>Writing Amount:</strong> %s</p>
		<p><strong>Tone Preference:</strong> %s</p>

		<h3>✨ Final Personal Touch</h3>
		<p><strong>Future Self Message:</strong> %s</p>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Personal Belief:</strong> %s</p>

		<hr>
		<p><em>Submitted at: %s</em></p>
	</body>
	</html>
	`,
		s.CurrentState,
		s.CurrentFeeling,
		s.MainGoal,
		s.GoalImportance,
		s.FutureIdentity,
		strings.Join(s.Obstacles, ", "),
		s.RemoveForever,
		s.MotivationType,
		s.ClosestSentence,
		s.Aesthetic,
		s.WantPhoto,
		s.AffirmationStyle,
		s.GuideStyle,
		s.WritingAmount,
		s.TonePreference,
		s.FutureSelfMessage,
		orDefault(s.Name),
		orDefault(s.PersonalBelief),
		timestamp.Format(time.RFC3339),
	)
}
