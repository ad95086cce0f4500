// Package dispatch runs the notification cycle: it fans users out over their
// lookahead dates, fetches each distinct feed day once, computes the delta
// against stored state and delivers change-only notifications.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/subplan/notification-dispatch/internal/config"
	"github.com/subplan/notification-dispatch/internal/delta"
	"github.com/subplan/notification-dispatch/internal/domain"
	"github.com/subplan/notification-dispatch/internal/infra/feed"
	"github.com/subplan/notification-dispatch/internal/infra/push"
	"github.com/subplan/notification-dispatch/internal/matching"
	"github.com/subplan/notification-dispatch/internal/observability/logging"
	"github.com/subplan/notification-dispatch/internal/observability/metrics"
	"github.com/subplan/notification-dispatch/internal/observability/tracing"
	"github.com/subplan/notification-dispatch/internal/ratelimit"
	"github.com/subplan/notification-dispatch/internal/schoolday"
)

const (
	feedLimiterKey = "dispatch:feed"
	pushLimiterKey = "dispatch:push"
)

type Service struct {
	users      domain.UserRepository
	timetables domain.TimetableRepository
	devices    domain.DeviceRepository
	states     domain.NotificationStateRepository
	source     feed.Source
	transport  push.Transport
	limiter    *ratelimit.Limiter
	metrics    *metrics.DispatchMetrics
	cfg        *config.DispatchConfig
	now        func() time.Time
}

type Option func(*Service)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	users domain.UserRepository,
	timetables domain.TimetableRepository,
	devices domain.DeviceRepository,
	states domain.NotificationStateRepository,
	source feed.Source,
	transport push.Transport,
	limiter *ratelimit.Limiter,
	m *metrics.DispatchMetrics,
	cfg *config.DispatchConfig,
	opts ...Option,
) *Service {
	s := &Service{
		users:      users,
		timetables: timetables,
		devices:    devices,
		states:     states,
		source:     source,
		transport:  transport,
		limiter:    limiter,
		metrics:    m,
		cfg:        cfg,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one dispatch cycle. A feed failure for any required date
// aborts the whole cycle before any state is written, so a flaky upstream
// never produces spurious "cleared" transitions.
func (s *Service) Run(ctx context.Context, opts Options) (*Summary, error) {
	now := s.now()

	if !opts.Force && !s.inDeliveryWindow(now) {
		return nil, ErrOutsideWindow
	}

	ctx, runID := logging.EnsureRequestID(ctx)
	start := now

	users, err := s.collectUsers(ctx, opts)
	if err != nil {
		return nil, err
	}

	ctx, cycleSpan := tracing.StartDispatchCycleSpan(ctx, runID, len(users))
	defer cycleSpan.End()

	slog.InfoContext(ctx, "dispatch cycle started",
		slog.String("run_id", runID),
		slog.Int("user_count", len(users)),
		slog.Bool("force", opts.Force),
	)

	userDates, err := s.resolveUserDates(users, now, opts)
	if err != nil {
		return nil, err
	}

	rowsByDate, err := s.fetchDistinctDates(ctx, userDates)
	if err != nil {
		tracing.RecordCycleResult(cycleSpan, 0, 0, 0, 0, 0, err)
		return nil, err
	}

	summary := &Summary{RunID: runID, Users: len(users)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.UserConcurrency)

	for _, u := range users {
		g.Go(func() error {
			s.processUser(gctx, u, userDates[u.ID], rowsByDate, opts, summary, &mu)
			return nil
		})
	}
	// Workers never return errors; per-user failures are counted, not fatal.
	_ = g.Wait()

	duration := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordCycleDuration(ctx, duration)
	}
	tracing.RecordCycleResult(cycleSpan,
		summary.PairsProcessed, summary.Sent, summary.SkippedUnchanged,
		summary.Cleared, summary.Failures, nil)

	slog.InfoContext(ctx, "dispatch cycle finished",
		slog.String("run_id", runID),
		slog.Int("pairs_processed", summary.PairsProcessed),
		slog.Int("sent", summary.Sent),
		slog.Int("skipped_unchanged", summary.SkippedUnchanged),
		slog.Int("cleared", summary.Cleared),
		slog.Int("failures", summary.Failures),
		slog.Duration("duration", duration),
	)

	return summary, nil
}

func (s *Service) inDeliveryWindow(now time.Time) bool {
	minute := now.Hour()*60 + now.Minute()
	from, to := s.cfg.WindowFromMinute, s.cfg.WindowToMinute
	if from <= to {
		return minute >= from && minute < to
	}
	// Window wraps past midnight.
	return minute >= from || minute < to
}

func (s *Service) collectUsers(ctx context.Context, opts Options) ([]domain.User, error) {
	if len(opts.UserIDs) == 0 {
		return s.users.ListNotifiableUsers(ctx)
	}

	users := make([]domain.User, 0, len(opts.UserIDs))
	for _, id := range opts.UserIDs {
		u, err := s.users.GetUser(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				slog.WarnContext(ctx, "skipping unknown user", slog.String("user_id", id))
				continue
			}
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

// resolveUserDates maps each user to the target dates of this run: either the
// pinned date from the options, or the user's lookahead horizon of school
// days starting today.
func (s *Service) resolveUserDates(users []domain.User, now time.Time, opts Options) (map[string][]time.Time, error) {
	var pinned time.Time
	if opts.DateKey != "" {
		var err error
		pinned, err = domain.ParseDateKey(opts.DateKey)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", opts.DateKey, err)
		}
	}

	userDates := make(map[string][]time.Time, len(users))
	for _, u := range users {
		if !pinned.IsZero() {
			userDates[u.ID] = []time.Time{pinned}
			continue
		}
		userDates[u.ID] = schoolday.NextSchoolDays(now, u.Lookahead(), true)
	}
	return userDates, nil
}

// fetchDistinctDates fetches every distinct target date exactly once, in
// parallel. The first failure cancels the rest and aborts the cycle.
func (s *Service) fetchDistinctDates(ctx context.Context, userDates map[string][]time.Time) (map[string][]domain.SubstitutionRow, error) {
	distinct := make(map[string]time.Time)
	for _, dates := range userDates {
		for _, d := range dates {
			distinct[domain.DateKey(d)] = d
		}
	}

	rowsByDate := make(map[string][]domain.SubstitutionRow, len(distinct))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for dateKey, date := range distinct {
		g.Go(func() error {
			if res := s.limiter.Consume(feedLimiterKey, s.cfg.FeedCapPerMinute, time.Minute); !res.Allowed {
				return fmt.Errorf("%w: retry after %s", ErrFeedRateLimited, res.RetryAfter)
			}

			fctx, span := tracing.StartFeedFetchSpan(gctx, dateKey)
			defer span.End()

			fetchStart := time.Now()
			rows, err := s.source.FetchDay(fctx, date)
			if s.metrics != nil {
				s.metrics.RecordFeedFetchDuration(fctx, time.Since(fetchStart))
			}
			tracing.RecordFeedFetchResult(span, len(rows), err)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", dateKey, err)
			}

			mu.Lock()
			rowsByDate[dateKey] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rowsByDate, nil
}

func (s *Service) processUser(
	ctx context.Context,
	user domain.User,
	dates []time.Time,
	rowsByDate map[string][]domain.SubstitutionRow,
	opts Options,
	summary *Summary,
	mu *sync.Mutex,
) {
	entries, err := s.timetables.EntriesForUser(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load timetable",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		mu.Lock()
		summary.Failures++
		mu.Unlock()
		return
	}

	devices, err := s.devices.DevicesForUser(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load devices",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		mu.Lock()
		summary.Failures++
		mu.Unlock()
		return
	}

	for _, date := range dates {
		dateKey := domain.DateKey(date)
		s.processUserDate(ctx, user, date, dateKey, rowsByDate[dateKey], entries, devices, opts, summary, mu)
	}
}

func (s *Service) processUserDate(
	ctx context.Context,
	user domain.User,
	date time.Time,
	dateKey string,
	rows []domain.SubstitutionRow,
	entries []domain.TimetableEntry,
	devices []domain.Device,
	opts Options,
	summary *Summary,
	mu *sync.Mutex,
) {
	ctx, span := tracing.StartUserDateSpan(ctx, user.ID, dateKey)
	defer span.End()

	// Deliveries and their matching state writes run detached from the
	// caller. Once a push is handed to the transport, a disconnecting
	// trigger request must not cancel the state upsert, or the next cycle
	// re-sends an already delivered set.
	dctx := context.WithoutCancel(ctx)

	if s.metrics != nil {
		s.metrics.RecordUserProcessed(ctx)
	}
	mu.Lock()
	summary.PairsProcessed++
	mu.Unlock()

	matches := matching.FindRelevantSubstitutions(rows, entries, date)
	keys := delta.CanonicalizeMatchKeys(matches)
	fingerprint := delta.BuildFingerprint(user.ID, dateKey, keys)

	previous, err := s.states.GetState(ctx, user.ID, dateKey)
	if err != nil && !errors.Is(err, domain.ErrStateNotFound) {
		slog.ErrorContext(ctx, "failed to load notification state",
			slog.String("user_id", user.ID),
			slog.String("date", dateKey),
			slog.String("error", err.Error()),
		)
		tracing.RecordUserDateResult(span, "error", len(matches), 0, err)
		mu.Lock()
		summary.Failures++
		mu.Unlock()
		return
	}

	action := delta.ResolveAction(previous, fingerprint, len(matches))

	switch action {
	case domain.DeltaClear:
		if err := s.states.DeleteState(dctx, user.ID, dateKey); err != nil {
			slog.ErrorContext(ctx, "failed to clear notification state",
				slog.String("user_id", user.ID),
				slog.String("date", dateKey),
				slog.String("error", err.Error()),
			)
			tracing.RecordUserDateResult(span, action.String(), 0, 0, err)
			mu.Lock()
			summary.Failures++
			mu.Unlock()
			return
		}
		tracing.RecordUserDateResult(span, action.String(), 0, 0, nil)
		if s.metrics != nil {
			s.metrics.RecordDeltaAction(ctx, action.String(), "cleared")
		}
		mu.Lock()
		summary.Cleared++
		mu.Unlock()

	case domain.DeltaSkip:
		outcome := "unchanged"
		if len(matches) == 0 {
			outcome = "no_matches"
		}
		if s.metrics != nil {
			s.metrics.RecordDeltaAction(ctx, action.String(), outcome)
		}
		mu.Lock()
		if len(matches) == 0 {
			summary.SkippedNoMatches++
		} else {
			summary.SkippedUnchanged++
		}
		mu.Unlock()

		// Manual re-send path: deliver again without touching stored state.
		// A zero-match day still gets the explicit all-clear summary, which
		// is the point of forcing a send.
		if opts.SendUnchanged {
			sent := s.deliver(dctx, user, dateKey, len(matches), devices, opts, summary, mu)
			tracing.RecordUserDateResult(span, action.String(), len(matches), sent, nil)
			return
		}
		tracing.RecordUserDateResult(span, action.String(), len(matches), 0, nil)

	case domain.DeltaSend:
		sent := s.deliver(dctx, user, dateKey, len(matches), devices, opts, summary, mu)
		if sent == 0 {
			// Leave state untouched: a device registered before the next run
			// still gets this notification.
			if s.metrics != nil {
				s.metrics.RecordDeltaAction(ctx, action.String(), "not_delivered")
			}
			tracing.RecordUserDateResult(span, action.String(), len(matches), 0, nil)
			return
		}

		state := domain.NewNotificationState(user.ID, dateKey, fingerprint, len(matches))
		if err := s.states.SaveState(dctx, state); err != nil {
			slog.ErrorContext(ctx, "failed to save notification state",
				slog.String("user_id", user.ID),
				slog.String("date", dateKey),
				slog.String("error", err.Error()),
			)
			tracing.RecordUserDateResult(span, action.String(), len(matches), sent, err)
			mu.Lock()
			summary.Failures++
			mu.Unlock()
			return
		}
		if s.metrics != nil {
			s.metrics.RecordDeltaAction(ctx, action.String(), "sent")
		}
		tracing.RecordUserDateResult(span, action.String(), len(matches), sent, nil)
		mu.Lock()
		summary.Sent++
		mu.Unlock()
	}
}

// deliver fans one notification out to the user's eligible devices and
// returns how many endpoints accepted it. Permanently rejected endpoints are
// removed on the spot.
func (s *Service) deliver(
	ctx context.Context,
	user domain.User,
	dateKey string,
	matchCount int,
	devices []domain.Device,
	opts Options,
	summary *Summary,
	mu *sync.Mutex,
) int {
	filter := opts.DeviceFilter
	if filter == "" {
		filter = domain.DeviceFilterAll
	}

	eligible := make([]domain.Device, 0, len(devices))
	for _, d := range devices {
		if filter.Allows(d.Platform()) {
			eligible = append(eligible, d)
		}
	}
	if len(eligible) == 0 {
		mu.Lock()
		summary.NoEligibleDevice++
		mu.Unlock()
		return 0
	}

	msg := push.Message{
		Title:   "Timetable changes",
		Body:    fmt.Sprintf("%d change(s) affect your lessons on %s", matchCount, dateKey),
		DateKey: dateKey,
		Count:   matchCount,
	}
	if matchCount == 0 {
		msg.Body = fmt.Sprintf("No relevant changes for your lessons on %s", dateKey)
	}

	sent := 0
	for _, device := range eligible {
		platform := string(device.Platform())

		if res := s.limiter.Consume(pushLimiterKey, s.cfg.PushCapPerMinute, time.Minute); !res.Allowed {
			slog.WarnContext(ctx, "push cap reached, deferring delivery",
				slog.String("user_id", user.ID),
				slog.String("device_id", device.ID),
				slog.Duration("retry_after", res.RetryAfter),
			)
			if s.metrics != nil {
				s.metrics.RecordDelivery(ctx, platform, "rate_limited")
			}
			mu.Lock()
			summary.Failures++
			mu.Unlock()
			continue
		}

		sctx, span := tracing.StartPushSendSpan(ctx, platform)
		result, err := s.transport.Send(sctx, device, msg)
		span.End()

		switch {
		case err != nil:
			slog.ErrorContext(ctx, "push delivery failed",
				slog.String("user_id", user.ID),
				slog.String("device_id", device.ID),
				slog.String("error", err.Error()),
			)
			if s.metrics != nil {
				s.metrics.RecordDelivery(ctx, platform, "error")
			}
			mu.Lock()
			summary.Failures++
			mu.Unlock()

		case result.Remove:
			if s.metrics != nil {
				s.metrics.RecordDelivery(ctx, platform, "gone")
			}
			if err := s.devices.DeleteDevice(ctx, device.ID); err != nil && !errors.Is(err, domain.ErrDeviceNotFound) {
				slog.ErrorContext(ctx, "failed to remove stale endpoint",
					slog.String("device_id", device.ID),
					slog.String("error", err.Error()),
				)
			} else {
				slog.InfoContext(ctx, "removed stale endpoint",
					slog.String("user_id", user.ID),
					slog.String("device_id", device.ID),
				)
				if s.metrics != nil {
					s.metrics.RecordEndpointRemoved(ctx, platform)
				}
				mu.Lock()
				summary.EndpointsRemoved++
				mu.Unlock()
			}

		case result.OK:
			sent++
			if s.metrics != nil {
				s.metrics.RecordDelivery(ctx, platform, "ok")
			}
			mu.Lock()
			summary.Deliveries++
			mu.Unlock()

		default:
			slog.WarnContext(ctx, "push delivery rejected",
				slog.String("user_id", user.ID),
				slog.String("device_id", device.ID),
				slog.Int("status_code", result.StatusCode),
				slog.String("reason", result.Reason),
			)
			if s.metrics != nil {
				s.metrics.RecordDelivery(ctx, platform, "rejected")
			}
			mu.Lock()
			summary.Failures++
			mu.Unlock()
		}
	}

	return sent
}
