package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"focusd/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// fakeSessions is an in-memory session log. An optional per-call delay
// makes read latency observable for the concurrency tests, and fixed
// lets a test pin the exact ListRange result.
type fakeSessions struct {
	mu        sync.Mutex
	sessions  []domain.Session
	fixed     []domain.Session
	addErr    error
	listErr   error
	delay     time.Duration
	listCalls int
	lastLimit int
}

func (f *fakeSessions) AddSession(_ context.Context, session domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessions) ListRange(_ context.Context, userID string, from, to time.Time) ([]domain.Session, error) {
	time.Sleep(f.delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.fixed != nil {
		return f.fixed, nil
	}
	var out []domain.Session
	for _, s := range f.sessions {
		if s.UserID != userID {
			continue
		}
		if s.CreatedAt.Before(from) || !s.CreatedAt.Before(to) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeSessions) ListRecent(_ context.Context, userID string, limit int) ([]domain.Session, error) {
	time.Sleep(f.delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Session
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeStreaks stores one streak record per user
type fakeStreaks struct {
	mu        sync.Mutex
	streaks   map[string]domain.Streak
	getErr    error
	upsertErr error
	delay     time.Duration
	getCalls  int
}

func newFakeStreaks() *fakeStreaks {
	return &fakeStreaks{streaks: map[string]domain.Streak{}}
}

func (f *fakeStreaks) GetStreak(_ context.Context, userID string) (*domain.Streak, error) {
	time.Sleep(f.delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	streak, ok := f.streaks[userID]
	if !ok {
		return nil, domain.ErrStreakNotFound
	}
	return &streak, nil
}

func (f *fakeStreaks) UpsertStreak(_ context.Context, streak domain.Streak) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.streaks[streak.UserID] = streak
	return nil
}

func (f *fakeStreaks) ResetStreak(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	streak, ok := f.streaks[userID]
	if !ok {
		return domain.ErrStreakNotFound
	}
	streak.Current = 0
	f.streaks[userID] = streak
	return nil
}

// fakeTasks stores tasks keyed by id and tallies pomodoro increments
type fakeTasks struct {
	mu           sync.Mutex
	tasks        map[string]domain.Task
	increments   map[string]int
	addedSeconds map[string]int
	addErr       error
	updateErr    error
	incErr       error
}

func newFakeTasks() *fakeTasks {
	return &fakeTasks{
		tasks:        map[string]domain.Task{},
		increments:   map[string]int{},
		addedSeconds: map[string]int{},
	}
}

func (f *fakeTasks) GetTask(_ context.Context, id, userID string) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok || task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}

func (f *fakeTasks) ListTasks(_ context.Context, userID string) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Task
	for _, task := range f.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTasks) AddTask(_ context.Context, task domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTasks) UpdateTask(_ context.Context, task domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTasks) DeleteTask(_ context.Context, id, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok || task.UserID != userID {
		return domain.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeTasks) IncrementPomodoro(_ context.Context, id, userID string, durationSeconds int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incErr != nil {
		return f.incErr
	}
	task, ok := f.tasks[id]
	if !ok || task.UserID != userID {
		return domain.ErrTaskNotFound
	}
	f.increments[id]++
	f.addedSeconds[id] += durationSeconds
	return nil
}
