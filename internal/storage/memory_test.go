package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaenox/meet-bot/internal/models"
)

func TestMemoryStorage_Session(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, got)

	day := time.Date(2026, time.October, 19, 11, 5, 0, 0, time.UTC)
	session := models.NewSession(day).MarkJoined(11, models.Lab)
	session.BlockedUntil = day.Add(115 * time.Minute)
	require.NoError(t, store.SaveSession(ctx, session))

	got, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.True(t, got.HasJoined(11))
}

func TestMemoryStorage_JoinsOn(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	monday := time.Date(2026, time.October, 19, 9, 5, 0, 0, time.UTC)

	second := &models.Join{Kind: models.Lab, Link: "https://meet.example.com/lab", JoinedAt: monday.Add(2 * time.Hour)}
	first := &models.Join{Kind: models.Regular, Link: "https://meet.example.com/regular", JoinedAt: monday}
	require.NoError(t, store.RecordJoin(ctx, second))
	require.NoError(t, store.RecordJoin(ctx, first))

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	joins, err := store.JoinsOn(ctx, monday)
	require.NoError(t, err)
	require.Len(t, joins, 2)
	assert.Equal(t, models.Regular, joins[0].Kind)
	assert.Equal(t, models.Lab, joins[1].Kind)

	joins[0].Kind = models.Elective
	again, err := store.JoinsOn(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, models.Regular, again[0].Kind)
}

func TestMemoryStorage_DropsEarlierDays(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	monday := time.Date(2026, time.October, 19, 9, 5, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	require.NoError(t, store.RecordJoin(ctx, &models.Join{Kind: models.Regular, JoinedAt: monday}))
	require.NoError(t, store.RecordJoin(ctx, &models.Join{Kind: models.Regular, JoinedAt: tuesday}))

	joins, err := store.JoinsOn(ctx, monday)
	require.NoError(t, err)
	assert.Empty(t, joins)

	joins, err = store.JoinsOn(ctx, tuesday)
	require.NoError(t, err)
	assert.Len(t, joins, 1)
}
