// Package entity defines the core business entities for the domain layer.
package entity

// Field identifies one prompt of the form.
type Field string

const (
	FieldFirstName            Field = "first_name"
	FieldLastName             Field = "last_name"
	FieldFirstInteger         Field = "first_integer"
	FieldSecondInteger        Field = "second_integer"
	FieldInputFile            Field = "input_file"
	FieldOutputFile           Field = "output_file"
	FieldPassword             Field = "password"
	FieldPasswordConfirmation Field = "password_confirmation"
)

// IsSecret reports whether values of the field must never be echoed or logged.
func (f Field) IsSecret() bool {
	return f == FieldPassword || f == FieldPasswordConfirmation
}
