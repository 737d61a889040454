package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jackut/internal/store"
)

// TestDeleteAccountCascade checks that deleting an account leaves no
// dangling reference anywhere: relationship sets, inboxes, community
// memberships, owned communities and sessions.
func TestDeleteAccountCascade(t *testing.T) {
	st, mariaSid, joaoSid := twoUsers(t)
	require.NoError(t, st.CreateUser("pedro", "senha", "Pedro"))
	pedroSid, err := st.OpenSession("pedro", "senha")
	require.NoError(t, err)

	// maria is woven into everything: friendships, idols, flirts,
	// enemies, messages and communities.
	require.NoError(t, st.AddFriend(mariaSid, "joao"))
	require.NoError(t, st.AddFriend(joaoSid, "maria"))
	require.NoError(t, st.AddIdol(joaoSid, "maria"))
	require.NoError(t, st.AddFlirt(pedroSid, "maria"))
	require.NoError(t, st.AddEnemy(mariaSid, "pedro"))
	require.NoError(t, st.SendMessage(mariaSid, "joao", "de maria"))
	require.NoError(t, st.SendMessage(pedroSid, "joao", "de pedro"))

	require.NoError(t, st.CreateCommunity(mariaSid, "DaMaria", "dela"))
	require.NoError(t, st.JoinCommunity(joaoSid, "DaMaria"))
	require.NoError(t, st.CreateCommunity(joaoSid, "DoJoao", "dele"))
	require.NoError(t, st.JoinCommunity(mariaSid, "DoJoao"))

	require.NoError(t, st.DeleteAccount(mariaSid))

	// The user record is gone.
	_, err = st.GetAttribute("maria", "name")
	assert.ErrorIs(t, err, store.ErrNoSuchUser)

	// Her sessions are gone.
	_, err = st.ResolveSession(mariaSid)
	assert.ErrorIs(t, err, store.ErrInvalidSession)

	// No relationship edge survives in either direction.
	friends, err := st.GetFriends("joao")
	require.NoError(t, err)
	assert.Equal(t, "{}", friends)

	flirts, err := st.GetFlirts("pedro")
	require.NoError(t, err)
	assert.Equal(t, "{}", flirts)

	// Her authored messages are scrubbed; others' survive.
	msg, err := st.ReadMessage(joaoSid)
	require.NoError(t, err)
	assert.Equal(t, "de pedro", msg)
	_, err = st.ReadMessage(joaoSid)
	assert.ErrorIs(t, err, store.ErrEmptyInbox)

	// Her community is gone entirely, former members lose the membership.
	_, err = st.GetCommunityOwner("DaMaria")
	assert.ErrorIs(t, err, store.ErrNoSuchCommunity)
	joaoCommunities, err := st.GetUserCommunities("joao")
	require.NoError(t, err)
	assert.Equal(t, "{DoJoao}", joaoCommunities)

	// Communities she merely joined no longer list her.
	members, err := st.GetCommunityMembers("DoJoao")
	require.NoError(t, err)
	assert.Equal(t, "{joao}", members)

	// A recreated login starts clean: no enemy block, no idol edges.
	require.NoError(t, st.CreateUser("maria", "nova", "Maria Nova"))
	newSid, err := st.OpenSession("maria", "nova")
	require.NoError(t, err)
	assert.NoError(t, st.SendMessage(pedroSid, "maria", "bem-vinda"))
	assert.NoError(t, st.AddFriend(newSid, "pedro"))

	idolized, err := st.IsFan("joao", "maria")
	require.NoError(t, err)
	assert.False(t, idolized)
}
