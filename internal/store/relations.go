package store

import (
	"fmt"

	"jackut/internal/domain"
)

// enemyBlock is the shared precondition of every relationship-mutating
// and messaging operation: an enemy edge in either direction between the
// two parties blocks the operation. It runs before the operation's own
// validations. The error names the party holding the enemy edge.
func (s *Store) enemyBlock(acting, other *domain.User) error {
	if other.Enemies.Contains(acting.Login) {
		return fmt.Errorf("%w: %s", ErrBlockedByEnemy, other.Login)
	}
	if acting.Enemies.Contains(other.Login) {
		return fmt.Errorf("%w: %s", ErrBlockedByEnemy, acting.Login)
	}
	return nil
}

// AddFriend records the acting user's friend request to target. The
// friendship is confirmed once target reciprocates.
func (s *Store) AddFriend(sessionID, targetLogin string) error {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return err
	}
	target, err := s.userByLogin(targetLogin)
	if err != nil {
		return err
	}
	if err := s.enemyBlock(user, target); err != nil {
		return err
	}
	if user.Login == target.Login {
		return fmt.Errorf("%w: %s", ErrSelfRelation, user.Login)
	}
	if user.Friends.Contains(target.Login) {
		if target.Friends.Contains(user.Login) {
			return fmt.Errorf("%w: %s", ErrAlreadyFriends, target.Login)
		}
		return fmt.Errorf("%w: %s", ErrFriendRequestPending, target.Login)
	}

	user.Friends.Add(target.Login)
	return nil
}

// AreFriends reports whether the friendship is confirmed, that is,
// whether both directional edges exist.
func (s *Store) AreFriends(loginA, loginB string) (bool, error) {
	a, err := s.userByLogin(loginA)
	if err != nil {
		return false, err
	}
	b, err := s.userByLogin(loginB)
	if err != nil {
		return false, err
	}
	return a.Friends.Contains(b.Login) && b.Friends.Contains(a.Login), nil
}

// GetFriends lists confirmed friends only; pending requests stay
// invisible. Order follows the user's own edge insertion order.
func (s *Store) GetFriends(login string) (string, error) {
	user, err := s.userByLogin(login)
	if err != nil {
		return "", err
	}
	var confirmed []string
	for _, friend := range user.Friends {
		if other := s.findUser(friend); other != nil && other.Friends.Contains(user.Login) {
			confirmed = append(confirmed, friend)
		}
	}
	return domain.EncodeList(confirmed), nil
}

// AddIdol makes idolLogin an idol of the acting user and, in the same
// operation, the acting user a fan of the idol.
func (s *Store) AddIdol(sessionID, idolLogin string) error {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return err
	}
	idol, err := s.userByLogin(idolLogin)
	if err != nil {
		return err
	}
	if err := s.enemyBlock(user, idol); err != nil {
		return err
	}
	if user.Login == idol.Login {
		return fmt.Errorf("%w: %s", ErrSelfRelation, user.Login)
	}
	if user.Idols.Contains(idol.Login) {
		return fmt.Errorf("%w: %s", ErrAlreadyIdolized, idol.Login)
	}

	user.Idols.Add(idol.Login)
	idol.Fans.Add(user.Login)
	return nil
}

// IsFan reports whether idolLogin is in login's idol set.
func (s *Store) IsFan(login, idolLogin string) (bool, error) {
	user, err := s.userByLogin(login)
	if err != nil {
		return false, err
	}
	if _, err := s.userByLogin(idolLogin); err != nil {
		return false, err
	}
	return user.Idols.Contains(idolLogin), nil
}

// GetFans lists the user's fans in insertion order.
func (s *Store) GetFans(login string) (string, error) {
	user, err := s.userByLogin(login)
	if err != nil {
		return "", err
	}
	return user.Fans.Encode(), nil
}

// AddFlirt records a directed flirt edge. When the edge completes a
// mutual pair, a system-authored announcement lands in both inboxes,
// exactly once, at that moment.
func (s *Store) AddFlirt(sessionID, flirtLogin string) error {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return err
	}
	flirt, err := s.userByLogin(flirtLogin)
	if err != nil {
		return err
	}
	if err := s.enemyBlock(user, flirt); err != nil {
		return err
	}
	if user.Login == flirt.Login {
		return fmt.Errorf("%w: %s", ErrSelfRelation, user.Login)
	}
	if user.Flirts.Contains(flirt.Login) {
		return fmt.Errorf("%w: %s", ErrAlreadyFlirting, flirt.Login)
	}

	user.Flirts.Add(flirt.Login)
	if flirt.Flirts.Contains(user.Login) {
		user.Inbox = append(user.Inbox, domain.Message{
			Sender:  SystemSender,
			Content: fmt.Sprintf("%s is your flirt - a jackut message", flirt.DisplayName),
		})
		flirt.Inbox = append(flirt.Inbox, domain.Message{
			Sender:  SystemSender,
			Content: fmt.Sprintf("%s is your flirt - a jackut message", user.DisplayName),
		})
	}
	return nil
}

// IsFlirt reports whether the outbound flirt edge exists; unlike
// friendships, no reciprocity is required.
func (s *Store) IsFlirt(login, flirtLogin string) (bool, error) {
	user, err := s.userByLogin(login)
	if err != nil {
		return false, err
	}
	if _, err := s.userByLogin(flirtLogin); err != nil {
		return false, err
	}
	return user.Flirts.Contains(flirtLogin), nil
}

// GetFlirts lists the user's outbound flirts in insertion order.
func (s *Store) GetFlirts(login string) (string, error) {
	user, err := s.userByLogin(login)
	if err != nil {
		return "", err
	}
	return user.Flirts.Encode(), nil
}

// AddEnemy inserts a directed enemy edge. Enemy edges are exempt from
// the enemy-block precondition.
func (s *Store) AddEnemy(sessionID, enemyLogin string) error {
	user, err := s.userBySession(sessionID)
	if err != nil {
		return err
	}
	enemy, err := s.userByLogin(enemyLogin)
	if err != nil {
		return err
	}
	if user.Login == enemy.Login {
		return fmt.Errorf("%w: %s", ErrSelfRelation, user.Login)
	}
	if user.Enemies.Contains(enemy.Login) {
		return fmt.Errorf("%w: %s", ErrAlreadyEnemies, enemy.Login)
	}

	user.Enemies.Add(enemy.Login)
	return nil
}
