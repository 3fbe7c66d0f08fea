package store

import (
	"context"
	"slices"
	"sync"

	"recruit/internal/application/models"
	"recruit/internal/application/service"
	"recruit/pkg/domain"
	"recruit/pkg/platform/sentinel"
)

type uniqueKey struct {
	applicant domain.UserID
	specialty domain.SpecialtyKey
}

// InMemory keeps applications in maps. Uniqueness per applicant and
// specialty is enforced under the store lock, like the PostgreSQL unique
// key.
type InMemory struct {
	mu        sync.RWMutex
	nextID    domain.ApplicationID
	apps      map[domain.ApplicationID]models.Application
	byKey     map[uniqueKey]domain.ApplicationID
	slots     map[domain.ApplicationID][]models.ScheduleSlot
	interests map[domain.ApplicationID][]models.CourseInterest
}

func NewInMemory() *InMemory {
	return &InMemory{
		apps:      make(map[domain.ApplicationID]models.Application),
		byKey:     make(map[uniqueKey]domain.ApplicationID),
		slots:     make(map[domain.ApplicationID][]models.ScheduleSlot),
		interests: make(map[domain.ApplicationID][]models.CourseInterest),
	}
}

func (s *InMemory) FindByApplicantAndSpecialty(_ context.Context, applicant domain.UserID, key domain.SpecialtyKey) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byKey[uniqueKey{applicant, key}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	app := s.apps[id]
	return &app, nil
}

func (s *InMemory) FindByID(_ context.Context, id domain.ApplicationID) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &app, nil
}

func (s *InMemory) Create(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := uniqueKey{app.ApplicantID, app.Specialty}
	if _, exists := s.byKey[key]; exists {
		return sentinel.ErrConflict
	}
	s.nextID++
	app.ID = s.nextID
	row := *app
	row.ScheduleSlots, row.CourseInterests = nil, nil
	s.apps[app.ID] = row
	s.byKey[key] = app.ID
	return nil
}

func (s *InMemory) AddScheduleSlots(_ context.Context, id domain.ApplicationID, slots []models.ScheduleSlot) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[id]; !ok {
		return 0, sentinel.ErrNotFound
	}
	s.slots[id] = append(s.slots[id], slots...)
	return len(slots), nil
}

func (s *InMemory) AddCourseInterests(_ context.Context, id domain.ApplicationID, interests []models.CourseInterest) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[id]; !ok {
		return 0, sentinel.ErrNotFound
	}
	s.interests[id] = append(s.interests[id], interests...)
	return len(interests), nil
}

func (s *InMemory) UpdateStatus(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.apps[app.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	row.Status = app.Status
	row.EvaluationComment = app.EvaluationComment
	row.EvaluatedAt = app.EvaluatedAt
	s.apps[app.ID] = row
	return nil
}

// List filters before sorting and paging, newest submission first with id
// as tie-break.
func (s *InMemory) List(_ context.Context, filter models.ListFilter) ([]*models.Application, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Application, 0, len(s.apps))
	for _, app := range s.apps {
		if filter.Specialty != nil && app.Specialty != *filter.Specialty {
			continue
		}
		if filter.ApplicantID != nil && app.ApplicantID != *filter.ApplicantID {
			continue
		}
		if filter.Status != nil && app.Status != *filter.Status {
			continue
		}
		matched = append(matched, app)
	}
	slices.SortFunc(matched, func(a, b models.Application) int {
		if c := b.SubmittedAt.Compare(a.SubmittedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})

	total := len(matched)
	lo := min(filter.Offset, total)
	hi := total
	if filter.Limit > 0 {
		hi = min(lo+filter.Limit, total)
	}
	out := make([]*models.Application, 0, hi-lo)
	for i := lo; i < hi; i++ {
		app := matched[i]
		out = append(out, &app)
	}
	return out, total, nil
}

func (s *InMemory) ScheduleSlotsFor(_ context.Context, ids []domain.ApplicationID) (map[domain.ApplicationID][]models.ScheduleSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.ApplicationID][]models.ScheduleSlot, len(ids))
	for _, id := range ids {
		if slots, ok := s.slots[id]; ok {
			out[id] = slices.Clone(slots)
		}
	}
	return out, nil
}

func (s *InMemory) CourseInterestsFor(_ context.Context, ids []domain.ApplicationID) (map[domain.ApplicationID][]models.CourseInterest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.ApplicationID][]models.CourseInterest, len(ids))
	for _, id := range ids {
		if interests, ok := s.interests[id]; ok {
			out[id] = slices.Clone(interests)
		}
	}
	return out, nil
}

// Count returns the number of stored applications, slots and interests.
func (s *InMemory) Count() (apps, slots, interests int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.slots {
		slots += len(v)
	}
	for _, v := range s.interests {
		interests += len(v)
	}
	return len(s.apps), slots, interests
}

type snapshot struct {
	nextID    domain.ApplicationID
	apps      map[domain.ApplicationID]models.Application
	byKey     map[uniqueKey]domain.ApplicationID
	slots     map[domain.ApplicationID][]models.ScheduleSlot
	interests map[domain.ApplicationID][]models.CourseInterest
}

func (s *InMemory) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		nextID:    s.nextID,
		apps:      make(map[domain.ApplicationID]models.Application, len(s.apps)),
		byKey:     make(map[uniqueKey]domain.ApplicationID, len(s.byKey)),
		slots:     make(map[domain.ApplicationID][]models.ScheduleSlot, len(s.slots)),
		interests: make(map[domain.ApplicationID][]models.CourseInterest, len(s.interests)),
	}
	for k, v := range s.apps {
		snap.apps[k] = v
	}
	for k, v := range s.byKey {
		snap.byKey[k] = v
	}
	for k, v := range s.slots {
		snap.slots[k] = slices.Clone(v)
	}
	for k, v := range s.interests {
		snap.interests[k] = slices.Clone(v)
	}
	return snap
}

func (s *InMemory) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = snap.nextID
	s.apps = snap.apps
	s.byKey = snap.byKey
	s.slots = snap.slots
	s.interests = snap.interests
}

// Journal is an append-only in-memory sink that can drop entries written
// by a rolled-back unit of work.
type Journal interface {
	Len() int
	Truncate(n int)
}

// InMemoryTx serializes units of work against an InMemory store and
// restores the previous state when fn fails.
type InMemoryTx struct {
	mu       sync.Mutex
	store    *InMemory
	journals []Journal
}

// NewInMemoryTx wraps store. Journals written inside a unit are rolled back
// with it.
func NewInMemoryTx(store *InMemory, journals ...Journal) *InMemoryTx {
	return &InMemoryTx{store: store, journals: journals}
}

func (t *InMemoryTx) RunInTx(ctx context.Context, fn func(ctx context.Context, store service.Store) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := t.store.snapshot()
	marks := make([]int, len(t.journals))
	for i, j := range t.journals {
		marks[i] = j.Len()
	}

	if err := fn(ctx, t.store); err != nil {
		t.store.restore(snap)
		for i, j := range t.journals {
			j.Truncate(marks[i])
		}
		return err
	}
	return nil
}
