package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"eventlineup/internal/domain"
)

// memStore backs the in-memory repositories so cascades behave like the database.
type memStore struct {
	events       map[string]*domain.Event
	performances map[string]*domain.Performance
	artists      map[string]*domain.Artist
	nextID       int
}

func newMemStore() *memStore {
	return &memStore{
		events:       make(map[string]*domain.Event),
		performances: make(map[string]*domain.Performance),
		artists:      make(map[string]*domain.Artist),
		nextID:       1,
	}
}

func (m *memStore) id(prefix string) string {
	id := fmt.Sprintf("%s-%d", prefix, m.nextID)
	m.nextID++
	return id
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	*memStore
	err error // if set, every call returns this error
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	for _, other := range f.events {
		if other.Name == e.Name {
			return domain.NewValidationError(domain.ErrDuplicateName, "event with this name already exists.", "name")
		}
	}
	e.ID = f.id("ev")
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	all, err := f.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	start := params.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all), nil
}

func (f *fakeEventRepo) ListAll(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Event, 0, len(f.events))
	for _, e := range f.events {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.events[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	for pid, p := range f.performances {
		if p.EventID == id {
			delete(f.performances, pid)
		}
	}
	return nil
}

// fakePerformanceRepo is an in-memory PerformanceRepository for tests.
type fakePerformanceRepo struct {
	*memStore
	updates int
}

func (f *fakePerformanceRepo) Create(ctx context.Context, p *domain.Performance) error {
	if _, ok := f.events[p.EventID]; !ok {
		return domain.NewValidationError(domain.ErrNotFound, "event does not exist", "event")
	}
	p.ID = f.id("perf")
	f.performances[p.ID] = clonePerformance(p)
	return nil
}

func (f *fakePerformanceRepo) GetByID(ctx context.Context, id string) (*domain.Performance, error) {
	p, ok := f.performances[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clonePerformance(p), nil
}

func (f *fakePerformanceRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Performance, error) {
	out := make([]*domain.Performance, 0)
	for _, p := range f.performances {
		if p.EventID == eventID {
			out = append(out, clonePerformance(p))
		}
	}
	sortPerformances(out)
	return out, nil
}

func (f *fakePerformanceRepo) List(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Performance, int, error) {
	out := make([]*domain.Performance, 0)
	for _, p := range f.performances {
		if eventID == "" || p.EventID == eventID {
			out = append(out, clonePerformance(p))
		}
	}
	sortPerformances(out)
	return out, len(out), nil
}

func (f *fakePerformanceRepo) Update(ctx context.Context, p *domain.Performance) error {
	if _, ok := f.performances[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.updates++
	f.performances[p.ID] = clonePerformance(p)
	return nil
}

func (f *fakePerformanceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.performances[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.performances, id)
	return nil
}

func (f *fakePerformanceRepo) SiblingsOf(ctx context.Context, eventID, excludeID string) ([]domain.Sibling, error) {
	out := make([]domain.Sibling, 0)
	for _, p := range f.performances {
		if p.EventID == eventID && p.ID != excludeID {
			out = append(out, domain.Sibling{ID: p.ID, Range: p.Range()})
		}
	}
	return out, nil
}

func (f *fakePerformanceRepo) ChildrenOf(ctx context.Context, eventID string) ([]domain.TimeRange, error) {
	out := make([]domain.TimeRange, 0)
	for _, p := range f.performances {
		if p.EventID == eventID {
			out = append(out, p.Range())
		}
	}
	return out, nil
}

// fakeArtistRepo is an in-memory ArtistRepository for tests.
type fakeArtistRepo struct {
	*memStore
}

func (f *fakeArtistRepo) Create(ctx context.Context, a *domain.Artist) error {
	for _, other := range f.artists {
		if other.Name == a.Name {
			return domain.NewValidationError(domain.ErrDuplicateName, "artist with this name already exists.", "name")
		}
	}
	a.ID = f.id("ar")
	cp := *a
	f.artists[a.ID] = &cp
	return nil
}

func (f *fakeArtistRepo) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArtistRepo) GetByNames(ctx context.Context, names []string) ([]*domain.Artist, error) {
	out := make([]*domain.Artist, 0)
	for _, a := range f.artists {
		for _, n := range names {
			if a.Name == n {
				cp := *a
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (f *fakeArtistRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Artist, int, error) {
	out := make([]*domain.Artist, 0, len(f.artists))
	for _, a := range f.artists {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, len(out), nil
}

func (f *fakeArtistRepo) Delete(ctx context.Context, id string) error {
	a, ok := f.artists[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(f.artists, id)
	for _, p := range f.performances {
		kept := p.Artists[:0]
		for _, n := range p.Artists {
			if n != a.Name {
				kept = append(kept, n)
			}
		}
		p.Artists = kept
	}
	return nil
}

// fakeLocker serializes callers with one mutex and records the locked event ids.
type fakeLocker struct {
	mu     sync.Mutex
	locked []string
	err    error                // if set, returned after fn succeeds (simulates a commit-time failure)
	refuse error                // if set, returned before fn runs (simulates an unparseable id)
	onLock func(eventID string) // if set, called once the lock is held
}

func (l *fakeLocker) WithEventLock(ctx context.Context, eventID string, fn func(ctx context.Context) error) error {
	if l.refuse != nil {
		return l.refuse
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locked = append(l.locked, eventID)
	if l.onLock != nil {
		l.onLock(eventID)
	}
	if err := fn(ctx); err != nil {
		return err
	}
	return l.err
}

// fakeSink records submitted jobs; full makes Submit refuse them.
type fakeSink struct {
	jobs []domain.ExportJob
	full bool
}

func (s *fakeSink) Submit(job domain.ExportJob) bool {
	if s.full {
		return false
	}
	s.jobs = append(s.jobs, job)
	return true
}

func clonePerformance(p *domain.Performance) *domain.Performance {
	cp := *p
	cp.Artists = append([]string{}, p.Artists...)
	return &cp
}

func sortPerformances(perfs []*domain.Performance) {
	sort.Slice(perfs, func(i, j int) bool {
		if !perfs[i].Start.Equal(perfs[j].Start) {
			return perfs[i].Start.Before(perfs[j].Start)
		}
		return perfs[i].ID < perfs[j].ID
	})
}
