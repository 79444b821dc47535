package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"focusd/internal/domain"
	"focusd/internal/ports"
)

// ErrInvalidRange reports a malformed startDate/endDate pair
var ErrInvalidRange = errors.New("invalid date range")

// StatsService recomputes focus statistics from the raw session log on
// every request. There is no caching layer.
type StatsService struct {
	sessions ports.SessionReader
	streaks  ports.StreakRepository
	now      func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(sessions ports.SessionReader, streaks ports.StreakRepository) *StatsService {
	return &StatsService{
		sessions: sessions,
		streaks:  streaks,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ComputeStats aggregates total focus time, per-day focus buckets, and
// the per-mode time distribution for the requested window.
//
// Window boundaries are client-local midnights shifted into UTC with
// utc = local + offset minutes. The session scan and the streak read
// run concurrently; either failing fails the whole computation.
func (s *StatsService) ComputeStats(ctx context.Context, userID string, params StatsParams) (*domain.Stats, error) {
	offset := time.Duration(params.TimezoneOffsetMinutes) * time.Minute

	localStart, localEnd, err := s.resolveRange(params, offset)
	if err != nil {
		return nil, err
	}

	// Inclusive local start day, exclusive end boundary one day past the
	// local end day.
	windowStart := localStart.Add(offset)
	windowEnd := localEnd.AddDate(0, 0, 1).Add(offset)

	// Pre-seed every day of the range so zero-activity days appear in the
	// output instead of being omitted.
	var dayOrder []string
	buckets := make(map[string]int)
	for d := localStart; d.Before(localEnd.AddDate(0, 0, 1)); d = d.AddDate(0, 0, 1) {
		key := d.Format(domain.DayLayout)
		dayOrder = append(dayOrder, key)
		buckets[key] = 0
	}

	// Fan out the two independent reads and join before composing.
	var (
		sessions []domain.Session
		streak   domain.StreakSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.sessions.ListRange(gctx, userID, windowStart, windowEnd)
		if err != nil {
			return fmt.Errorf("failed to fetch sessions: %w", err)
		}
		sessions = list
		return nil
	})
	g.Go(func() error {
		record, err := s.streaks.GetStreak(gctx, userID)
		if errors.Is(err, domain.ErrStreakNotFound) {
			// Zero-filled summary for users with no streak record yet.
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to fetch streak: %w", err)
		}
		streak = domain.StreakSummary{Current: record.Current, Longest: record.Longest}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := domain.Summary{Streak: streak}
	distribution := map[domain.Mode]int{}

	for _, sess := range sessions {
		distribution[sess.Mode] += sess.DurationSeconds

		if sess.Mode != domain.ModeWork {
			continue
		}
		summary.TotalFocusTime += sess.DurationSeconds
		summary.CompletedSessions++

		// Back to the client's local calendar day. Sessions that land
		// outside the seeded range are dropped, not added.
		key := sess.CreatedAt.Add(-offset).Format(domain.DayLayout)
		if _, ok := buckets[key]; ok {
			buckets[key] += sess.DurationSeconds
		}
	}

	dailyFocus := make([]domain.DailyFocus, len(dayOrder))
	for i, day := range dayOrder {
		dailyFocus[i] = domain.DailyFocus{Date: day, Duration: buckets[day]}
	}

	return &domain.Stats{
		Summary:    summary,
		DailyFocus: dailyFocus,
		Distribution: []domain.ModeSlice{
			{Name: string(domain.ModeWork), Value: distribution[domain.ModeWork], Color: domain.ColorWork},
			{Name: string(domain.ModeShortBreak), Value: distribution[domain.ModeShortBreak], Color: domain.ColorShortBreak},
			{Name: string(domain.ModeLongBreak), Value: distribution[domain.ModeLongBreak], Color: domain.ColorLongBreak},
		},
	}, nil
}

// resolveRange returns the local calendar midnights bounding the window
// (both inclusive day starts). Defaults to the trailing seven local days
// ending now.
func (s *StatsService) resolveRange(params StatsParams, offset time.Duration) (time.Time, time.Time, error) {
	if params.StartDate != "" && params.EndDate != "" {
		start, err := time.Parse(domain.DayLayout, params.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidRange, params.StartDate)
		}
		end, err := time.Parse(domain.DayLayout, params.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidRange, params.EndDate)
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end before start", ErrInvalidRange)
		}
		return start, end, nil
	}

	localNow := s.now().Add(-offset)
	y, m, d := localNow.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return end.AddDate(0, 0, -6), end, nil
}

// History returns the raw session log, newest first, optionally bounded
// by a local-calendar date range.
func (s *StatsService) History(ctx context.Context, userID string, params HistoryParams) ([]domain.Session, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	if params.StartDate == "" && params.EndDate == "" {
		sessions, err := s.sessions.ListRecent(ctx, userID, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch sessions: %w", err)
		}
		return sessions, nil
	}

	start := time.Time{}
	if params.StartDate != "" {
		parsed, err := time.Parse(domain.DayLayout, params.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRange, params.StartDate)
		}
		start = parsed
	}
	end := s.now().AddDate(0, 0, 1)
	if params.EndDate != "" {
		parsed, err := time.Parse(domain.DayLayout, params.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRange, params.EndDate)
		}
		end = parsed.AddDate(0, 0, 1)
	}

	sessions, err := s.sessions.ListRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	// ListRange is oldest-first; history reads newest-first.
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	return sessions, nil
}
