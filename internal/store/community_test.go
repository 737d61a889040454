package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jackut/internal/store"
)

func TestCreateCommunity(t *testing.T) {
	st, mariaSid, _ := twoUsers(t)

	require.NoError(t, st.CreateCommunity(mariaSid, "Amigos", "amigos da maria"))

	owner, err := st.GetCommunityOwner("Amigos")
	require.NoError(t, err)
	assert.Equal(t, "maria", owner)

	desc, err := st.GetCommunityDescription("Amigos")
	require.NoError(t, err)
	assert.Equal(t, "amigos da maria", desc)

	// Owner is a member from creation.
	members, err := st.GetCommunityMembers("Amigos")
	require.NoError(t, err)
	assert.Equal(t, "{maria}", members)

	communities, err := st.GetUserCommunities("maria")
	require.NoError(t, err)
	assert.Equal(t, "{Amigos}", communities)

	assert.ErrorIs(t, st.CreateCommunity(mariaSid, "Amigos", "de novo"), store.ErrDuplicateCommunity)
}

func TestJoinCommunity(t *testing.T) {
	st, mariaSid, joaoSid := twoUsers(t)
	require.NoError(t, st.CreateCommunity(mariaSid, "Amigos", "amigos da maria"))

	require.NoError(t, st.JoinCommunity(joaoSid, "Amigos"))

	members, err := st.GetCommunityMembers("Amigos")
	require.NoError(t, err)
	assert.Equal(t, "{maria,joao}", members)

	assert.ErrorIs(t, st.JoinCommunity(joaoSid, "Amigos"), store.ErrAlreadyMember)
	assert.ErrorIs(t, st.JoinCommunity(joaoSid, "Inexistente"), store.ErrNoSuchCommunity)
}

func TestCommunityPostFanOut(t *testing.T) {
	st, mariaSid, joaoSid := twoUsers(t)
	require.NoError(t, st.CreateCommunity(mariaSid, "Amigos", "amigos da maria"))
	require.NoError(t, st.JoinCommunity(joaoSid, "Amigos"))

	require.NoError(t, st.PostToCommunity(mariaSid, "Amigos", "oi"))

	// Every current member receives the post, sender included.
	post, err := st.ReadPost(mariaSid)
	require.NoError(t, err)
	assert.Equal(t, "oi", post)

	post, err = st.ReadPost(joaoSid)
	require.NoError(t, err)
	assert.Equal(t, "oi", post)

	_, err = st.ReadPost(mariaSid)
	assert.ErrorIs(t, err, store.ErrEmptyTimeline)
}

func TestCommunityPostNotRetroactive(t *testing.T) {
	st, mariaSid, joaoSid := twoUsers(t)
	require.NoError(t, st.CreateCommunity(mariaSid, "Amigos", "amigos da maria"))

	require.NoError(t, st.PostToCommunity(mariaSid, "Amigos", "antes"))
	require.NoError(t, st.JoinCommunity(joaoSid, "Amigos"))
	require.NoError(t, st.PostToCommunity(mariaSid, "Amigos", "depois"))

	// joao only sees the post sent after joining.
	post, err := st.ReadPost(joaoSid)
	require.NoError(t, err)
	assert.Equal(t, "depois", post)
	_, err = st.ReadPost(joaoSid)
	assert.ErrorIs(t, err, store.ErrEmptyTimeline)

	// maria sees both, in order.
	post, err = st.ReadPost(mariaSid)
	require.NoError(t, err)
	assert.Equal(t, "antes", post)
	post, err = st.ReadPost(mariaSid)
	require.NoError(t, err)
	assert.Equal(t, "depois", post)
}

func TestCommunityScenario(t *testing.T) {
	// The reference scenario: one owner, one post, one read, then empty.
	st, mariaSid, _ := twoUsers(t)

	require.NoError(t, st.CreateCommunity(mariaSid, "Amigos", "amigos da maria"))
	require.NoError(t, st.PostToCommunity(mariaSid, "Amigos", "oi"))

	post, err := st.ReadPost(mariaSid)
	require.NoError(t, err)
	assert.Equal(t, "oi", post)

	_, err = st.ReadPost(mariaSid)
	assert.ErrorIs(t, err, store.ErrEmptyTimeline)
}

func TestCommunityLookupsMissing(t *testing.T) {
	st := store.New()

	_, err := st.GetCommunityDescription("nada")
	assert.ErrorIs(t, err, store.ErrNoSuchCommunity)
	_, err = st.GetCommunityOwner("nada")
	assert.ErrorIs(t, err, store.ErrNoSuchCommunity)
	_, err = st.GetCommunityMembers("nada")
	assert.ErrorIs(t, err, store.ErrNoSuchCommunity)
	_, err = st.GetUserCommunities("nobody")
	assert.ErrorIs(t, err, store.ErrNoSuchUser)
}
