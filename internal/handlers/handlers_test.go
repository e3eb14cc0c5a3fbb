package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

type insertedDoc struct {
	collection string
	doc        interface{}
}

type fakeStore struct {
	inserts   []insertedDoc
	insertID  string
	insertErr error

	findDocs  []bson.M
	findErr   error
	findCalls int
	lastLimit int64
}

func (f *fakeStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserts = append(f.inserts, insertedDoc{collection: collection, doc: doc})
	if f.insertID == "" {
		return "64f1a2b3c4d5e6f7a8b9c0d1", nil
	}
	return f.insertID, nil
}

func (f *fakeStore) Find(ctx context.Context, collection string, filter, projection bson.M, limit int64) ([]bson.M, error) {
	f.findCalls++
	f.lastLimit = limit
	return f.findDocs, f.findErr
}

type sentEmail struct {
	subject string
	body    string
	to      string
}

type fakeSender struct {
	sent []sentEmail
	err  error
}

func (f *fakeSender) Send(subject, htmlBody, to string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{subject: subject, body: htmlBody, to: to})
	return nil
}

func newTestHandler() (*Handler, *fakeStore, *fakeSender) {
	store := &fakeStore{}
	sender := &fakeSender{}
	return New(store, sender, "ops@example.com"), store, sender
}

func postJSON(t *testing.T, body interface{}) (*httptest.ResponseRecorder, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		t.Fatalf("encode request body: %v", err)
	}
	return httptest.NewRecorder(), buf
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
