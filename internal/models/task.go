package models

// Completion is the completion flag of a remote task record.
//
// The service is expected to send a JSON boolean. Anything else (a missing
// field, null, a string, a number) decodes to CompletionInvalid instead of
// failing the whole page decode; the validator rejects such records.
type Completion int

const (
	CompletionInvalid Completion = iota
	CompletionPending
	CompletionDone
)

// UnmarshalJSON accepts strict JSON booleans only.
func (c *Completion) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*c = CompletionDone
	case "false":
		*c = CompletionPending
	default:
		*c = CompletionInvalid
	}
	return nil
}

// Task represents one todo item owned by a user
type Task struct {
	ID        int        `json:"id"`
	UserID    int        `json:"userId"`
	Title     string     `json:"title"`
	Completed Completion `json:"completed"`
}
