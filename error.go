package textcase

const (
	underscoreEndMessage = "Invalid input: Strings ending with an underscore are not allowed."
	dotEndMessage        = "Invalid input: Strings ending with a dot are not allowed."
)

// InvalidInputError signals input rejected by a converter validation rule
type InvalidInputError struct {
	message string
}

// Error returns the validation message
func (e *InvalidInputError) Error() string {
	return e.message
}

// NewInvalidInputError creates an invalid input error with the supplied message
func NewInvalidInputError(message string) *InvalidInputError {
	return &InvalidInputError{message: message}
}
