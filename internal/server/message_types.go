package server

// MessageType represents a WebSocket message type with type safety
type MessageType string

// WebSocket message type constants
// These are used for client-server communication protocol
const (
	// Client to server messages
	MessageTypeStart  MessageType = "start"
	MessageTypeAnswer MessageType = "answer"
	MessageTypeNext   MessageType = "next"
	MessageTypeEnd    MessageType = "end"

	// Server to client messages
	MessageTypeSpot    MessageType = "spot"
	MessageTypeResult  MessageType = "result"
	MessageTypeSummary MessageType = "summary"
	MessageTypeError   MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
