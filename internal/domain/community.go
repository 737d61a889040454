package domain

// Community groups users under a unique name. The owner is a member
// from creation and membership only grows, except for account-deletion
// cascades.
type Community struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Members     Set    `json:"members"`
}
