package ws

import "time"

// Server → client event types.
const (
	EventMessageReceived = "message.received"
	EventPostReceived    = "post.received"
	EventFriendConfirmed = "friend.confirmed"
	EventFlirtMatched    = "flirt.matched"
	EventPong            = "pong"
	EventError           = "error"
)

// Client → server event types.
const (
	EventPing = "ping"
)

// Event is the envelope for all WebSocket traffic. Payload carries a
// small string map naming the counterpart login or community.
type Event struct {
	Type      string            `json:"type"`
	Payload   map[string]string `json:"payload,omitempty"`
	Timestamp int64             `json:"ts,omitempty"`
}

// NewEvent stamps a server→client event with the current time.
func NewEvent(eventType string, payload map[string]string) *Event {
	return &Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
}
