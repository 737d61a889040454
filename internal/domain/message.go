package domain

// Message is an immutable record delivered either to a user's inbox
// (direct message) or to a user's timeline (community post fan-out).
// Both queues are consumed oldest-first, one read removes the head.
type Message struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}
