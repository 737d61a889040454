package store

import (
	"fmt"
	"strconv"

	"jackut/internal/domain"
)

// SystemSender is the login stamped on messages the store itself
// authors, such as the mutual-flirt announcement.
const SystemSender = "jackut"

// Store is the aggregate root owning all users, communities and live
// sessions. It is the sole authority for uniqueness and existence
// invariants and assumes a single caller thread; a concurrent host must
// serialize access around the whole aggregate.
type Store struct {
	users       []*domain.User
	communities []*domain.Community
	sessions    []domain.Session

	// nextSession is monotonic for the process lifetime; Reset does not
	// rewind it, so session ids are never reused.
	nextSession int
}

func New() *Store {
	return &Store{}
}

// CreateUser registers a new account with empty attributes, relations
// and queues.
func (s *Store) CreateUser(login, password, displayName string) error {
	if login == "" {
		return fmt.Errorf("%w: empty login", ErrInvalidCredential)
	}
	if password == "" {
		return fmt.Errorf("%w: empty password", ErrInvalidCredential)
	}
	if s.findUser(login) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, login)
	}

	s.users = append(s.users, &domain.User{
		Login:       login,
		Password:    password,
		DisplayName: displayName,
	})
	return nil
}

// OpenSession authenticates login/password and returns the id of a
// fresh session. An unknown login and a wrong password fail identically.
func (s *Store) OpenSession(login, password string) (string, error) {
	user := s.findUser(login)
	if user == nil || user.Password != password {
		return "", ErrInvalidCredential
	}

	id := strconv.Itoa(s.nextSession)
	s.nextSession++
	s.sessions = append(s.sessions, domain.Session{ID: id, Login: login})
	return id, nil
}

// DeleteAccount removes the acting user and every trace of it: all five
// relationship edge-sets of every other user, direct messages it
// authored in any inbox, community memberships, communities it owned
// (entirely), and all of its sessions.
func (s *Store) DeleteAccount(sessionID string) error {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return err
	}

	kept := s.sessions[:0]
	for _, sess := range s.sessions {
		if sess.Login != user.Login {
			kept = append(kept, sess)
		}
	}
	s.sessions = kept

	for _, other := range s.users {
		if other.Login == user.Login {
			continue
		}
		other.Friends.Remove(user.Login)
		other.Idols.Remove(user.Login)
		other.Fans.Remove(user.Login)
		other.Flirts.Remove(user.Login)
		other.Enemies.Remove(user.Login)

		inbox := other.Inbox[:0]
		for _, msg := range other.Inbox {
			if msg.Sender != user.Login {
				inbox = append(inbox, msg)
			}
		}
		other.Inbox = inbox
	}

	remaining := s.communities[:0]
	for _, c := range s.communities {
		if c.Owner == user.Login {
			// Cascade: the whole community goes, former members lose
			// the membership.
			for _, member := range c.Members {
				if m := s.findUser(member); m != nil {
					m.Communities.Remove(c.Name)
				}
			}
			continue
		}
		c.Members.Remove(user.Login)
		remaining = append(remaining, c)
	}
	s.communities = remaining

	for i, u := range s.users {
		if u.Login == user.Login {
			s.users = append(s.users[:i], s.users[i+1:]...)
			break
		}
	}
	return nil
}

// Load replaces the user and community collections with a prior
// snapshot. Sessions never persist, so the session directory is left
// untouched.
func (s *Store) Load(users []*domain.User, communities []*domain.Community) {
	s.users = users
	s.communities = communities
}

// Snapshot exposes the collections the persistence collaborator saves.
func (s *Store) Snapshot() ([]*domain.User, []*domain.Community) {
	return s.users, s.communities
}

// Reset clears users, sessions and communities unconditionally. The
// session counter keeps running so ids stay unique for the process.
func (s *Store) Reset() {
	s.users = nil
	s.communities = nil
	s.sessions = nil
}

// ResolveSession returns the login of the user a live session belongs
// to, for callers that only need the acting identity.
func (s *Store) ResolveSession(sessionID string) (string, error) {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return "", err
	}
	return user.Login, nil
}

func (s *Store) findUser(login string) *domain.User {
	for _, u := range s.users {
		if u.Login == login {
			return u
		}
	}
	return nil
}

// userByLogin resolves a login-taking operation's subject.
func (s *Store) userByLogin(login string) (*domain.User, error) {
	if u := s.findUser(login); u != nil {
		return u, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSuchUser, login)
}

// userBySession resolves a session-taking operation's acting user.
func (s *Store) userBySession(sessionID string) (*domain.User, error) {
	for _, sess := range s.sessions {
		if sess.ID == sessionID {
			return s.userByLogin(sess.Login)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidSession, sessionID)
}
