package store

import (
	"fmt"

	"jackut/internal/domain"
)

// SendMessage appends a direct message to the recipient's inbox.
func (s *Store) SendMessage(sessionID, recipientLogin, content string) error {
	sender, err := s.userBySession(sessionID)
	if err != nil {
		return err
	}
	recipient, err := s.userByLogin(recipientLogin)
	if err != nil {
		return err
	}
	if err := s.enemyBlock(sender, recipient); err != nil {
		return err
	}
	if sender.Login == recipient.Login {
		return fmt.Errorf("%w: %s", ErrSelfMessage, sender.Login)
	}

	recipient.Inbox = append(recipient.Inbox, domain.Message{
		Sender:  sender.Login,
		Content: content,
	})
	return nil
}

// ReadMessage dequeues and returns the oldest direct message.
func (s *Store) ReadMessage(sessionID string) (string, error) {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return "", err
	}
	if len(user.Inbox) == 0 {
		return "", ErrEmptyInbox
	}
	msg := user.Inbox[0]
	user.Inbox = user.Inbox[1:]
	return msg.Content, nil
}

// ReadPost dequeues and returns the oldest community post on the acting
// user's timeline.
func (s *Store) ReadPost(sessionID string) (string, error) {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return "", err
	}
	if len(user.Timeline) == 0 {
		return "", ErrEmptyTimeline
	}
	post := user.Timeline[0]
	user.Timeline = user.Timeline[1:]
	return post.Content, nil
}
