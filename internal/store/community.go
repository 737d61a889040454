package store

import (
	"fmt"

	"jackut/internal/domain"
)

// CreateCommunity registers a community with the acting user as owner
// and sole initial member.
func (s *Store) CreateCommunity(sessionID, name, description string) error {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return err
	}
	if s.findCommunity(name) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateCommunity, name)
	}

	s.communities = append(s.communities, &domain.Community{
		Name:        name,
		Description: description,
		Owner:       user.Login,
		Members:     domain.Set{user.Login},
	})
	user.Communities.Add(name)
	return nil
}

// JoinCommunity adds the acting user to a community. Joining a
// community the user already belongs to is an error.
func (s *Store) JoinCommunity(sessionID, name string) error {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return err
	}
	community, err := s.communityByName(name)
	if err != nil {
		return err
	}
	if community.Members.Contains(user.Login) {
		return fmt.Errorf("%w: %s", ErrAlreadyMember, name)
	}

	community.Members.Add(user.Login)
	user.Communities.Add(name)
	return nil
}

// PostToCommunity fans a message out to the timeline of every current
// member. Users joining later do not receive it.
func (s *Store) PostToCommunity(sessionID, name, content string) error {
	sender, err := s.userBySession(sessionID)
	if err != nil {
		return err
	}
	community, err := s.communityByName(name)
	if err != nil {
		return err
	}

	post := domain.Message{Sender: sender.Login, Content: content}
	for _, member := range community.Members {
		if m := s.findUser(member); m != nil {
			m.Timeline = append(m.Timeline, post)
		}
	}
	return nil
}

func (s *Store) GetCommunityDescription(name string) (string, error) {
	community, err := s.communityByName(name)
	if err != nil {
		return "", err
	}
	return community.Description, nil
}

func (s *Store) GetCommunityOwner(name string) (string, error) {
	community, err := s.communityByName(name)
	if err != nil {
		return "", err
	}
	return community.Owner, nil
}

func (s *Store) GetCommunityMembers(name string) (string, error) {
	community, err := s.communityByName(name)
	if err != nil {
		return "", err
	}
	return community.Members.Encode(), nil
}

// GetUserCommunities lists the communities a user belongs to, in join
// order.
func (s *Store) GetUserCommunities(login string) (string, error) {
	user, err := s.userByLogin(login)
	if err != nil {
		return "", err
	}
	return user.Communities.Encode(), nil
}

func (s *Store) findCommunity(name string) *domain.Community {
	for _, c := range s.communities {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *Store) communityByName(name string) (*domain.Community, error) {
	if c := s.findCommunity(name); c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSuchCommunity, name)
}
