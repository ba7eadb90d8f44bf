package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xaenox/meet-bot/internal/launcher"
	"github.com/xaenox/meet-bot/internal/models"
	"github.com/xaenox/meet-bot/internal/notify"
	"github.com/xaenox/meet-bot/internal/schedule"
	"github.com/xaenox/meet-bot/internal/storage"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type Bot struct {
	timetable models.Timetable
	storage   storage.Storage
	launcher  launcher.Launcher
	notifier  notify.Notifier
	clock     Clock
	interval  time.Duration
	logger    *zap.Logger

	// mu makes each load-resolve-save cycle atomic
	mu      sync.Mutex
	planDay time.Time
}

type Option func(*Bot)

func WithClock(clock Clock) Option {
	return func(b *Bot) { b.clock = clock }
}

func WithNotifier(notifier notify.Notifier) Option {
	return func(b *Bot) { b.notifier = notifier }
}

func WithInterval(interval time.Duration) Option {
	return func(b *Bot) { b.interval = interval }
}

func New(timetable models.Timetable, storage storage.Storage, launcher launcher.Launcher, logger *zap.Logger, opts ...Option) *Bot {
	b := &Bot{
		timetable: timetable,
		storage:   storage,
		launcher:  launcher,
		notifier:  notify.NopNotifier{},
		clock:     SystemClock{},
		interval:  time.Minute,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start ticks once right away and then every interval until ctx is done.
// Errors and panics inside a tick are logged and the loop keeps going.
func (b *Bot) Start(ctx context.Context) error {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	b.logger.Info("Scheduler set up. Waiting to join meetings...",
		zap.Duration("interval", b.interval))
	b.safeTick(ctx)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Bot stopped")
			return nil
		case <-ticker.C:
			b.safeTick(ctx)
		}
	}
}

func (b *Bot) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Unexpected error", zap.Any("panic", r))
		}
	}()

	if _, err := b.Tick(ctx); err != nil {
		b.logger.Error("Unexpected error", zap.Error(err))
	}
}

// Tick makes one decision and, if a meeting is due, opens it.
func (b *Bot) Tick(ctx context.Context) (models.Decision, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	b.announceDay(now)

	session, err := b.storage.GetSession(ctx)
	if err != nil {
		return models.NoMeeting(), fmt.Errorf("failed to load session: %w", err)
	}

	decision, session := schedule.Resolve(now, b.timetable, session)

	if err := b.storage.SaveSession(ctx, session); err != nil {
		return models.NoMeeting(), fmt.Errorf("failed to save session: %w", err)
	}

	if decision.Join {
		b.join(ctx, now, decision)
	}
	return decision, nil
}

func (b *Bot) join(ctx context.Context, now time.Time, decision models.Decision) {
	b.logger.Info("Joining meeting",
		zap.String("kind", string(decision.Kind)),
		zap.String("at", now.Format("15:04")))

	join := &models.Join{
		Kind:     decision.Kind,
		Link:     decision.Link,
		JoinedAt: now,
	}

	if err := b.launcher.Open(decision.Link); err != nil {
		b.logger.Error("Failed to open meeting link",
			zap.Error(err),
			zap.String("kind", string(decision.Kind)))
		join.LaunchErr = err.Error()
	}

	if err := b.storage.RecordJoin(ctx, join); err != nil {
		b.logger.Error("Failed to record join",
			zap.Error(err),
			zap.String("kind", string(decision.Kind)))
	}

	if err := b.notifier.Notify(ctx, *join); err != nil {
		b.logger.Error("Failed to send notification",
			zap.Error(err),
			zap.String("join_id", join.ID))
	}
}

// announceDay logs the day's plan the first time a tick lands on a new date.
func (b *Bot) announceDay(now time.Time) {
	if !b.planDay.IsZero() && models.SameDay(b.planDay, now) {
		return
	}
	if !b.planDay.IsZero() {
		b.logger.Info("Date changed. Regenerating schedule for new day...")
	}
	b.planDay = models.StartOfDay(now)

	plan := schedule.Plan(b.timetable, now)
	if len(plan) == 0 {
		b.logger.Info("No meetings scheduled for today.")
		return
	}

	entries := make([]string, 0, len(plan))
	for _, m := range plan {
		entries = append(entries, fmt.Sprintf("%s %s", m.JoinAt.Format("15:04"), m.Kind))
	}
	b.logger.Info("Today's meetings",
		zap.Int("count", len(plan)),
		zap.Strings("schedule", entries))

	if next, ok := schedule.Next(plan, now); ok {
		b.logger.Debug("Next meeting",
			zap.String("kind", string(next.Kind)),
			zap.Time("join_at", next.JoinAt))
	}
}

// Today returns the meetings planned for the day containing day.
func (b *Bot) Today(day time.Time) []models.Meeting {
	return schedule.Plan(b.timetable, day)
}

// Joins returns what the bot has opened so far on day.
func (b *Bot) Joins(ctx context.Context, day time.Time) ([]*models.Join, error) {
	return b.storage.JoinsOn(ctx, day)
}
