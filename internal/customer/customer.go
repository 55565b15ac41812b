// Package customer holds the customer record shared by the server and the
// client, the filter predicate applied to it and the typed mutation failures
// both sides exchange.
package customer

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MaxDiscount is the upper bound of Record.Discount.
const MaxDiscount = 30

// Record is a customer as seen by the store, the wire and the UI.
//
// An empty ID means the record has not been persisted yet; the store assigns
// one on the first successful save.
type Record struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name" validate:"notblank"`
	LastName  string `json:"last_name" validate:"notblank"`
	Email     string `json:"email" validate:"notblank"`
	Discount  int    `json:"discount" validate:"gte=0,lte=30"`
	Removable bool   `json:"can_be_removed"`
}

// Persisted reports whether the record already carries a store identifier.
func (r Record) Persisted() bool {
	return r.ID != ""
}

// FullName is the string the Name filter mode searches in.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the invariants a record must satisfy before it is accepted
// for persistence. The returned error is a validator.ValidationErrors value
// when a field rule fails.
func (r Record) Validate() error {
	return validate.Struct(r)
}

// FieldErrors returns validation messages keyed by field name, in the form the
// edit surface shows next to each input. A nil map means the record is valid.
func (r Record) FieldErrors() map[string]string {
	err := r.Validate()
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		return "First Name is required"
	case "LastName":
		return "Last Name is required"
	case "Email":
		return "Email is required"
	case "Discount":
		return "Discount must be between 0 and 30"
	}
	return fe.Error()
}
