package model

import "time"

// Variant is the visual flavour of a toast.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// Toast is a transient feedback message surfaced to the user.
type Toast struct {
	// ID is the unique identifier for this toast.
	ID string `json:"id"`

	// Variant selects the icon and colour.
	Variant Variant `json:"variant"`

	// Message is the human-readable text.
	Message string `json:"message"`

	// CreatedAt is when the toast was shown.
	CreatedAt time.Time `json:"created_at"`
}
