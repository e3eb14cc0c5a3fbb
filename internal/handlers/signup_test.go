package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailSignup(t *testing.T) {
	h, store, sender := newTestHandler()

	rec, body := postJSON(t, map[string]string{"email": "reader@example.com"})
	h.EmailSignup(rec, httptest.NewRequest(http.MethodPost, "/api/email-signup", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp emailSignupResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "You're on the list! We'll notify you when Identity Kits launch.", resp.Message)

	require.Len(t, store.inserts, 1)
	assert.Equal(t, "email_signups", store.inserts[0].collection)
	doc, ok := store.inserts[0].doc.(emailSignupDoc)
	require.True(t, ok)
	assert.Equal(t, "reader@example.com", doc.Email)
	_, err := time.Parse(time.RFC3339Nano, doc.Timestamp)
	assert.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "New Early Access Signup - DearYou", sender.sent[0].subject)
	assert.Equal(t, "ops@example.com", sender.sent[0].to)
	assert.Contains(t, sender.sent[0].body, "reader@example.com")
}

func TestEmailSignupInvalidEmail(t *testing.T) {
	h, store, sender := newTestHandler()

	rec, body := postJSON(t, map[string]string{"email": "not-an-email"})
	h.EmailSignup(rec, httptest.NewRequest(http.MethodPost, "/api/email-signup", body))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp errorResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "email")

	assert.Empty(t, store.inserts, "invalid signups must not be persisted")
	assert.Empty(t, sender.sent)
}

func TestEmailSignupMissingEmail(t *testing.T) {
	h, store, _ := newTestHandler()

	rec, body := postJSON(t, map[string]string{})
	h.EmailSignup(rec, httptest.NewRequest(http.MethodPost, "/api/email-signup", body))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, store.inserts)
}

func TestEmailSignupDuplicateAccepted(t *testing.T) {
	h, store, _ := newTestHandler()

	for i := 0; i < 2; i++ {
		rec, body := postJSON(t, map[string]string{"email": "again@example.com"})
		h.EmailSignup(rec, httptest.NewRequest(http.MethodPost, "/api/email-signup", body))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Len(t, store.inserts, 2, "duplicate signups are stored as-is")
}

func TestEmailSignupEmailFailureAfterWrite(t *testing.T) {
	h, store, sender := newTestHandler()
	sender.err = assert.AnError

	rec, body := postJSON(t, map[string]string{"email": "reader@example.com"})
	h.EmailSignup(rec, httptest.NewRequest(http.MethodPost, "/api/email-signup", body))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, store.inserts, 1)

	var resp errorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Failed to process signup", resp.Message)
}
