package domain

// Session pairs an opaque id with the login that opened it. Ids are
// assigned sequentially by the store and never reused within a process
// lifetime; a user may hold several sessions at once. Sessions are
// never persisted.
type Session struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}
