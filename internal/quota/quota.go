package quota

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agencyscope/agencyscope/pkg/logger"
)

// DailyLimit is the number of contact views a free-tier user may consume per
// calendar day. Pro subscribers bypass the gate entirely rather than getting
// a higher ceiling.
const DailyLimit = 50

// Usage reports a user's consumption against the daily ceiling.
type Usage struct {
	ConsumedToday int `json:"consumedToday"`
	Remaining     int `json:"remaining"`
}

// RecordResult reports the outcome of a view-recording attempt.
type RecordResult struct {
	Accepted     bool `json:"accepted"`
	LimitReached bool `json:"limitReached"`
}

// ViewStore persists immutable contact-view events.
type ViewStore interface {
	// CountViewsSince counts view rows for the user with viewed_at >= since.
	CountViewsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	// HasViewSince reports whether the user already viewed the contact at or after since.
	HasViewSince(ctx context.Context, userID, contactID uuid.UUID, since time.Time) (bool, error)
	// InsertView appends one view event stamped with the current time.
	InsertView(ctx context.Context, userID, contactID uuid.UUID) error
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLimit overrides the daily ceiling. Intended for tests and future
// per-tier configuration; the counting logic is unaffected.
func WithLimit(limit int) Option {
	return func(t *Tracker) { t.limit = limit }
}

// WithClock overrides the time source. Intended for day-boundary tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// Tracker gates and records per-user daily contact-view events.
type Tracker struct {
	store ViewStore
	limit int
	now   func() time.Time
	log   *slog.Logger
}

// NewTracker returns a Tracker with the fixed free-tier daily limit.
func NewTracker(store ViewStore, log *slog.Logger, opts ...Option) *Tracker {
	if log == nil {
		log = slog.Default()
	}
	t := &Tracker{
		store: store,
		limit: DailyLimit,
		now:   time.Now,
		log:   log.With(logger.Component("quota")),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Remaining reports how many views the user consumed since local midnight and
// how many remain under the ceiling. Remaining never goes negative.
func (t *Tracker) Remaining(ctx context.Context, userID uuid.UUID) (Usage, error) {
	consumed, err := t.store.CountViewsSince(ctx, userID, StartOfDay(t.now()))
	if err != nil {
		return Usage{}, errors.Join(ErrFailedToCountViews, err)
	}

	return Usage{
		ConsumedToday: consumed,
		Remaining:     max(0, t.limit-consumed),
	}, nil
}

// Record attempts to consume one view. The count is re-derived at write time
// rather than reusing an earlier read, so a stale pre-check cannot widen the
// window. Pro users skip the ceiling check entirely.
//
// Two requests racing past the same count can still both insert; the check
// and the insert are not wrapped in one transaction. Accepted tradeoff: the
// overshoot is at most one row per concurrent request and the ceiling is a
// product courtesy, not a billing boundary.
func (t *Tracker) Record(ctx context.Context, userID, contactID uuid.UUID, isPro bool) (RecordResult, error) {
	if !isPro {
		consumed, err := t.store.CountViewsSince(ctx, userID, StartOfDay(t.now()))
		if err != nil {
			return RecordResult{}, errors.Join(ErrFailedToCountViews, err)
		}
		if consumed >= t.limit {
			t.log.InfoContext(ctx, "daily view limit reached", logger.UserID(userID))
			return RecordResult{Accepted: false, LimitReached: true}, nil
		}
	}

	if err := t.store.InsertView(ctx, userID, contactID); err != nil {
		return RecordResult{}, errors.Join(ErrFailedToRecordView, err)
	}

	return RecordResult{Accepted: true}, nil
}

// ViewedToday reports whether the user already viewed this contact since
// local midnight. Callers use it to replay cached detail without consuming
// fresh quota; the tracker itself never deduplicates.
func (t *Tracker) ViewedToday(ctx context.Context, userID, contactID uuid.UUID) (bool, error) {
	viewed, err := t.store.HasViewSince(ctx, userID, contactID, StartOfDay(t.now()))
	if err != nil {
		return false, errors.Join(ErrFailedToCountViews, err)
	}
	return viewed, nil
}

// StartOfDay returns local midnight of the calendar day containing now.
// The boundary is a fixed wall-clock reset, not a rolling 24h window, and is
// re-derived from the clock on every call.
func StartOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
