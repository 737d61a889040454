package store

import (
	"fmt"

	"jackut/internal/domain"
)

// displayNameAttr is the reserved attribute key that aliases the
// display name on both reads and writes.
const displayNameAttr = "name"

// GetAttribute returns the named profile attribute of a user.
func (s *Store) GetAttribute(login, name string) (string, error) {
	user, err := s.userByLogin(login)
	if err != nil {
		return "", err
	}
	if name == displayNameAttr {
		return user.DisplayName, nil
	}
	for _, attr := range user.Attributes {
		if attr.Name == name {
			return attr.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrAttributeNotSet, name)
}

// SetAttribute upserts a profile attribute for the acting user. Writes
// never fail for a missing attribute.
func (s *Store) SetAttribute(sessionID, name, value string) error {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return err
	}
	if name == displayNameAttr {
		user.DisplayName = value
		return nil
	}
	for i := range user.Attributes {
		if user.Attributes[i].Name == name {
			user.Attributes[i].Value = value
			return nil
		}
	}
	user.Attributes = append(user.Attributes, domain.Attribute{Name: name, Value: value})
	return nil
}
