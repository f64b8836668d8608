package intake

import "github.com/google/uuid"

// CreateSessionRequest starts an intake conversation. Flow selects the step
// policy; the seeded ZIPs come from the referring page's query string.
type CreateSessionRequest struct {
	Flow    string `json:"flow" validate:"omitempty,oneof=scripted focus"`
	FromZip string `json:"fromZip" validate:"omitempty,len=5,numeric"`
	ToZip   string `json:"toZip" validate:"omitempty,len=5,numeric"`
}

// AnswerRequest submits one answer for one step.
type AnswerRequest struct {
	Step  string `json:"step" validate:"required"`
	Value string `json:"value" validate:"required,max=254"`
}

// CompleteRequest finishes the conversation with a handoff intent.
type CompleteRequest struct {
	Intent string `json:"intent" validate:"required,oneof=specialist virtual builder"`
}

// SessionResponse wraps machine state with the session identifier.
type SessionResponse struct {
	SessionID uuid.UUID `json:"sessionId"`
	State     State     `json:"state"`
}

// CompleteResponse is the final payload of a session.
type CompleteResponse struct {
	SessionID uuid.UUID `json:"sessionId"`
	Handoff   Handoff   `json:"handoff"`
}
