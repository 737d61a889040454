package domain

// User is an account record. The login is unique across the store and
// immutable after creation; the password is compared by plain equality
// and never exposed to other users.
type User struct {
	Login       string `json:"login"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`

	Attributes []Attribute `json:"attributes,omitempty"`

	// Outbound relationship edges, keyed by the other party's login.
	// Reciprocity (confirmed friendship, mutual flirt) is computed by a
	// symmetric lookup at query time, never stored redundantly.
	Friends Set `json:"friends,omitempty"`
	Idols   Set `json:"idols,omitempty"`
	Fans    Set `json:"fans,omitempty"`
	Flirts  Set `json:"flirts,omitempty"`
	Enemies Set `json:"enemies,omitempty"`

	Inbox    []Message `json:"inbox,omitempty"`
	Timeline []Message `json:"timeline,omitempty"`

	// Communities holds the names of the communities this user belongs to.
	Communities Set `json:"communities,omitempty"`
}

// Attribute is a single free-form profile entry. One value per name;
// attributes keep insertion order so the persisted model stays
// deterministic.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
