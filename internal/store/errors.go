package store

import "errors"

// Every failure the store reports, one sentinel per cause. All are
// local, synchronous and non-retryable; callers branch with errors.Is
// and render the wrapped context (offending login or community name).
var (
	// ErrInvalidCredential covers both a bad login/password at account
	// creation and a failed session open. On session open the "no such
	// user" and "wrong password" causes deliberately collapse into this
	// one error so logins cannot be enumerated.
	ErrInvalidCredential = errors.New("invalid login or password")

	ErrDuplicateAccount = errors.New("an account with this login already exists")
	ErrNoSuchUser       = errors.New("user not registered")
	ErrInvalidSession   = errors.New("invalid session")
	ErrAttributeNotSet  = errors.New("attribute not set")

	ErrSelfRelation = errors.New("cannot relate a user to itself")
	ErrSelfMessage  = errors.New("cannot send a message to yourself")

	ErrAlreadyFriends       = errors.New("users are already friends")
	ErrFriendRequestPending = errors.New("friend request already sent, awaiting acceptance")
	ErrAlreadyIdolized      = errors.New("user is already an idol")
	ErrAlreadyFlirting      = errors.New("user is already a flirt")
	ErrAlreadyEnemies       = errors.New("users are already enemies")

	// ErrBlockedByEnemy is returned before any relationship or messaging
	// mutation between two users with an enemy edge in either direction.
	// The wrapped message names the blocking party.
	ErrBlockedByEnemy = errors.New("interaction blocked by an enemy relation")

	ErrEmptyInbox    = errors.New("no messages to read")
	ErrEmptyTimeline = errors.New("no posts to read")

	ErrDuplicateCommunity = errors.New("a community with this name already exists")
	ErrNoSuchCommunity    = errors.New("community does not exist")
	ErrAlreadyMember      = errors.New("user is already a member of this community")
)
