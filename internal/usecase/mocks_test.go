// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/repository"
	"github.com/ShamanRShetty/Mental-Wellness/internal/respond"
)

// ---- session repository fake ----

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
	touched  int
}

var _ repository.SessionRepository = (*fakeSessionRepo)(nil)

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*model.Session{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[s.ID]; ok {
		return domain.ErrAlreadyExists
	}
	cp := *s
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) Find(_ context.Context, id string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	cp.History = append([]model.Message(nil), s.History...)
	cp.MoodEntries = append([]model.MoodEntry(nil), s.MoodEntries...)
	cp.CrisisLog = append([]model.CrisisEvent(nil), s.CrisisLog...)
	return &cp, nil
}

func (f *fakeSessionRepo) AppendMessage(_ context.Context, m *model.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[m.SessionID]
	if !ok {
		return domain.ErrNotFound
	}
	s.History = append(s.History, *m)
	return nil
}

func (f *fakeSessionRepo) History(_ context.Context, id string) ([]model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]model.Message(nil), s.History...), nil
}

func (f *fakeSessionRepo) ClearHistory(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.History = nil
	return nil
}

func (f *fakeSessionRepo) AppendCrisisEvent(_ context.Context, e *model.CrisisEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[e.SessionID]
	if !ok {
		return domain.ErrNotFound
	}
	s.CrisisLog = append(s.CrisisLog, *e)
	return nil
}

func (f *fakeSessionRepo) AppendMoodEntry(_ context.Context, e *model.MoodEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[e.SessionID]
	if !ok {
		return domain.ErrNotFound
	}
	s.MoodEntries = append(s.MoodEntries, *e)
	return nil
}

func (f *fakeSessionRepo) MoodEntries(_ context.Context, id string, since time.Time) ([]model.MoodEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	var out []model.MoodEntry
	for _, e := range s.MoodEntries {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) Touch(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.LastActive = time.Now()
	f.touched++
	return nil
}

func (f *fakeSessionRepo) DeleteIdleBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, s := range f.sessions {
		if s.LastActive.Before(cutoff) {
			delete(f.sessions, id)
			n++
		}
	}
	return n, nil
}

// ---- journal repository fake ----

type fakeJournalRepo struct {
	mu      sync.Mutex
	entries map[string]*model.JournalEntry
}

var _ repository.JournalRepository = (*fakeJournalRepo)(nil)

func newFakeJournalRepo() *fakeJournalRepo {
	return &fakeJournalRepo{entries: map[string]*model.JournalEntry{}}
}

func (f *fakeJournalRepo) Create(_ context.Context, e *model.JournalEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}

func (f *fakeJournalRepo) FindByID(_ context.Context, id string) (*model.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeJournalRepo) FindBySession(_ context.Context, sessionID string, limit, offset int) ([]model.JournalEntry, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []model.JournalEntry
	for _, e := range f.entries {
		if e.SessionID == sessionID {
			all = append(all, *e)
		}
	}
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (f *fakeJournalRepo) Update(_ context.Context, e *model.JournalEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}

func (f *fakeJournalRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.entries, id)
	return nil
}

// ---- resource repository fake ----

type fakeResourceRepo struct {
	mu        sync.Mutex
	resources map[string]*model.Resource
}

var _ repository.ResourceRepository = (*fakeResourceRepo)(nil)

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{resources: map[string]*model.Resource{}}
}

func (f *fakeResourceRepo) Create(_ context.Context, r *model.Resource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *r
	f.resources[r.ID] = &cp
	return nil
}

func (f *fakeResourceRepo) FindByID(_ context.Context, id string) (*model.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.resources[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeResourceRepo) List(_ context.Context, fl model.ResourceFilter) ([]model.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Resource
	for _, r := range f.resources {
		if fl.Category != "" && r.Category != fl.Category {
			continue
		}
		if fl.Language != "" && r.Language != fl.Language {
			continue
		}
		if fl.IsEmergency != nil && r.IsEmergency != *fl.IsEmergency {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeResourceRepo) IncrementViews(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.resources[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Views++
	return nil
}

func (f *fakeResourceRepo) MarkHelpful(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.resources[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Helpful++
	return nil
}

// ---- responder and adapter fakes ----

type fakeResponder struct {
	reply respond.Reply
	err   error
	calls int
}

func (f *fakeResponder) Respond(_ context.Context, _ string, _ []model.Message) (respond.Reply, error) {
	f.calls++
	return f.reply, f.err
}

type fakeChatAI struct {
	reply string
	err   error
	calls int
}

var _ adapter.AIServiceAdapter = (*fakeChatAI)(nil)

func (f *fakeChatAI) Chat(_ context.Context, _ string, _ []adapter.Message) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeChatAI) ChatWithUsage(ctx context.Context, m string, msgs []adapter.Message) (string, adapter.Usage, error) {
	text, err := f.Chat(ctx, m, msgs)
	return text, adapter.Usage{}, err
}

func (f *fakeChatAI) CountTokens(_ context.Context, _ string, _ []adapter.Message) (int, error) {
	return 0, nil
}

type fakeTranslator struct {
	out   string
	err   error
	calls int
}

var _ adapter.Translator = (*fakeTranslator)(nil)

func (f *fakeTranslator) Translate(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.out, f.err
}
