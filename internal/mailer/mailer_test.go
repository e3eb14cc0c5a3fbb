package mailer

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestSendWithoutUsername(t *testing.T) {
	m := New("smtp.gmail.com", 587, "", "")

	err := m.Send("Subject", "<p>body</p>", "ops@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendDryRun(t *testing.T) {
	buf := captureLog(t)
	m := New("smtp.gmail.com", 587, "notify@example.com", "")

	body := "<p>" + strings.Repeat("x", 300) + "</p>"
	err := m.Send("New Signup", body, "ops@example.com")
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "ops@example.com")
	assert.Contains(t, logged, "New Signup")
	// Body preview is truncated to 200 characters
	assert.Contains(t, logged, body[:200])
	assert.NotContains(t, logged, body)
}

func TestSendDryRunShortBody(t *testing.T) {
	buf := captureLog(t)
	m := New("smtp.gmail.com", 587, "notify@example.com", "")

	require.NoError(t, m.Send("Hi", "<p>short</p>", "ops@example.com"))
	assert.Contains(t, buf.String(), "<p>short</p>")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 200))
	assert.Equal(t, strings.Repeat("a", 200), truncate(strings.Repeat("a", 500), 200))
}
