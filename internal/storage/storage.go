package storage

import (
	"context"
	"time"

	"github.com/xaenox/meet-bot/internal/models"
)

// Storage keeps the bot's state for the current day.
type Storage interface {
	GetSession(ctx context.Context) (models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	Close() error

	JoinLog
}

// JoinLog records the meetings that were opened.
type JoinLog interface {
	RecordJoin(ctx context.Context, join *models.Join) error
	JoinsOn(ctx context.Context, day time.Time) ([]*models.Join, error)
}
