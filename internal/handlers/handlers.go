package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
)

// Store is the document-store surface the handlers need. *database.Store
// satisfies it; tests substitute fakes.
type Store interface {
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)
	Find(ctx context.Context, collection string, filter, projection bson.M, limit int64) ([]bson.M, error)
}

// Sender delivers a single HTML notification email.
type Sender interface {
	Send(subject, htmlBody, to string) error
}

// Handler holds the dependencies shared by all endpoint handlers. It is
// constructed once in main and carries no per-request state.
type Handler struct {
	store       Store
	mail        Sender
	notifyEmail string
	validate    *validator.Validate
}

func New(store Store, mail Sender, notifyEmail string) *Handler {
	v := validator.New()
	// Report validation errors under the JSON field names clients actually send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{store: store, mail: mail, notifyEmail: notifyEmail, validate: v}
}

type errorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Success: false, Message: message})
}

// fieldErrors runs struct validation and returns per-field messages, or nil
// when the value is valid.
func (h *Handler) fieldErrors(v interface{}) map[string]string {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				out[fe.Field()] = "field required"
			case "email":
				out[fe.Field()] = "value is not a valid email address"
			default:
				out[fe.Field()] = "invalid value"
			}
		}
	} else {
		out["body"] = "invalid request"
	}
	return out
}
