package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jackut/internal/store"
)

func TestGetAttributeNameAlias(t *testing.T) {
	st, _, _ := twoUsers(t)

	name, err := st.GetAttribute("maria", "name")
	require.NoError(t, err)
	assert.Equal(t, "Maria", name)
}

func TestGetAttributeUnset(t *testing.T) {
	st, _, _ := twoUsers(t)

	_, err := st.GetAttribute("maria", "city")
	assert.ErrorIs(t, err, store.ErrAttributeNotSet)

	_, err = st.GetAttribute("nobody", "city")
	assert.ErrorIs(t, err, store.ErrNoSuchUser)
}

func TestSetAttributeUpsert(t *testing.T) {
	st, mariaSid, _ := twoUsers(t)

	// Insert, then replace.
	require.NoError(t, st.SetAttribute(mariaSid, "city", "Maceio"))
	city, err := st.GetAttribute("maria", "city")
	require.NoError(t, err)
	assert.Equal(t, "Maceio", city)

	require.NoError(t, st.SetAttribute(mariaSid, "city", "Recife"))
	city, err = st.GetAttribute("maria", "city")
	require.NoError(t, err)
	assert.Equal(t, "Recife", city)
}

func TestSetAttributeUpdatesDisplayName(t *testing.T) {
	st, mariaSid, _ := twoUsers(t)

	require.NoError(t, st.SetAttribute(mariaSid, "name", "Maria Silva"))
	name, err := st.GetAttribute("maria", "name")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", name)
}

func TestSetAttributeInvalidSession(t *testing.T) {
	st := store.New()
	err := st.SetAttribute("99", "city", "Maceio")
	assert.ErrorIs(t, err, store.ErrInvalidSession)
}
