package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError      Event = "error"
	EventEnrollment Event = "enrollment"
	EventPong       Event = "pong"
)

// EnrollmentMessage wraps an enrollment feed event for the wire.
type EnrollmentMessage struct {
	Event   Event  `json:"event"`
	Payload string `json:"payload"` // JSON-encoded model.EnrollmentEvent
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
