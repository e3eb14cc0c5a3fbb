package models

// EmailSignup is an early-access signup. Duplicate emails are accepted; no
// uniqueness is enforced at this layer.
type EmailSignup struct {
	Email string `bson:"email" json:"email" validate:"required,email"`
}
