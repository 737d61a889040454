package snapshot_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jackut/internal/domain"
	"jackut/internal/snapshot"
)

func openTestDB(t *testing.T) *snapshot.DB {
	t.Helper()
	db, err := snapshot.Open(filepath.Join(t.TempDir(), "jackut.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := []*domain.User{
		{
			Login:       "maria",
			Password:    "123456",
			DisplayName: "Maria",
			Attributes:  []domain.Attribute{{Name: "city", Value: "Maceio"}},
			Friends:     domain.Set{"joao"},
			Idols:       domain.Set{"joao"},
			Flirts:      domain.Set{"pedro"},
			Inbox:       []domain.Message{{Sender: "joao", Content: "oi"}},
			Timeline:    []domain.Message{{Sender: "joao", Content: "post"}},
			Communities: domain.Set{"Amigos"},
		},
		{
			Login:       "joao",
			Password:    "654321",
			DisplayName: "Joao",
			Friends:     domain.Set{"maria"},
			Fans:        domain.Set{"maria"},
			Enemies:     domain.Set{"pedro"},
		},
	}
	communities := []*domain.Community{
		{
			Name:        "Amigos",
			Description: "amigos da maria",
			Owner:       "maria",
			Members:     domain.Set{"maria", "joao"},
		},
	}

	require.NoError(t, db.Save(ctx, users, communities))

	gotUsers, gotCommunities, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, gotUsers)
	assert.Equal(t, communities, gotCommunities)
}

func TestSaveOverwrites(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	first := []*domain.User{{Login: "maria", Password: "1", DisplayName: "Maria"}}
	require.NoError(t, db.Save(ctx, first, nil))

	second := []*domain.User{{Login: "joao", Password: "2", DisplayName: "Joao"}}
	require.NoError(t, db.Save(ctx, second, nil))

	users, communities, err := db.Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "joao", users[0].Login)
	assert.Empty(t, communities)
}

func TestDiscard(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := []*domain.User{{Login: "maria", Password: "1", DisplayName: "Maria"}}
	communities := []*domain.Community{{Name: "Amigos", Owner: "maria", Members: domain.Set{"maria"}}}
	require.NoError(t, db.Save(ctx, users, communities))

	require.NoError(t, db.Discard(ctx))

	gotUsers, gotCommunities, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotUsers)
	assert.Empty(t, gotCommunities)
}

func TestLoadEmpty(t *testing.T) {
	db := openTestDB(t)

	users, communities, err := db.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, users)
	assert.Nil(t, communities)
}
