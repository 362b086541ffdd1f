package document

import (
	"context"
	"os"
	"sync"
)

type fakeSurface struct {
	mu sync.Mutex

	confirmAnswer bool
	confirmErr    error
	confirms      []string

	openPath string
	openErr  error
	openExts [][]string

	savePath     string
	saveErr      error
	saveDefaults []string

	url         string
	urlErr      error
	urlDefaults []string

	text    string
	textErr error

	loads         []string
	generation    uint64
	affordances   []Affordances
	onAffordances func(Affordances)
	notices       []Notice
	quits         int
}

func (s *fakeSurface) Confirm(_ context.Context, title, message string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirms = append(s.confirms, title+"|"+message)
	return s.confirmAnswer, s.confirmErr
}

func (s *fakeSurface) ChooseOpenPath(_ context.Context, exts []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openExts = append(s.openExts, exts)
	return s.openPath, s.openErr
}

func (s *fakeSurface) ChooseSavePath(_ context.Context, def string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveDefaults = append(s.saveDefaults, def)
	return s.savePath, s.saveErr
}

func (s *fakeSurface) PromptURL(_ context.Context, def string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.urlDefaults = append(s.urlDefaults, def)
	return s.url, s.urlErr
}

func (s *fakeSurface) Text(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.textErr
}

// Load mirrors the editor: loaded content becomes the live text.
func (s *fakeSurface) Load(generation uint64, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads = append(s.loads, content)
	s.generation = generation
	s.text = content
}

func (s *fakeSurface) SetAffordances(a Affordances) {
	s.mu.Lock()
	s.affordances = append(s.affordances, a)
	hook := s.onAffordances
	s.mu.Unlock()
	if hook != nil {
		hook(a)
	}
}

func (s *fakeSurface) Notify(n Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, n)
}

func (s *fakeSurface) Quit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quits++
}

func (s *fakeSurface) lastAffordances() Affordances {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.affordances) == 0 {
		return Affordances{}
	}
	return s.affordances[len(s.affordances)-1]
}

type fakeStore struct {
	files    map[string]string
	readErr  error
	writeErr error
	reads    []string
	writes   []string
}

func newFakeStore(files map[string]string) *fakeStore {
	if files == nil {
		files = map[string]string{}
	}
	return &fakeStore{files: files}
}

func (s *fakeStore) ReadFile(path string) ([]byte, error) {
	s.reads = append(s.reads, path)
	if s.readErr != nil {
		return nil, s.readErr
	}
	data, ok := s.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(data), nil
}

func (s *fakeStore) WriteFile(path string, data []byte) error {
	s.writes = append(s.writes, path)
	if s.writeErr != nil {
		return s.writeErr
	}
	s.files[path] = string(data)
	return nil
}

type fakeFetcher struct {
	body []byte
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.body, f.err
}

type fakeRecents struct {
	paths []string
	err   error
}

func (r *fakeRecents) Add(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

type harness struct {
	surface *fakeSurface
	store   *fakeStore
	fetcher *fakeFetcher
	recents *fakeRecents
	ctrl    *Controller
}

func newHarness(files map[string]string) *harness {
	h := &harness{
		surface: &fakeSurface{},
		store:   newFakeStore(files),
		fetcher: &fakeFetcher{},
		recents: &fakeRecents{},
	}
	h.ctrl = NewController(h.surface,
		WithStore(h.store),
		WithFetcher(h.fetcher),
		WithRecents(h.recents),
	)
	return h
}

// edit simulates the user typing text into the surface.
func (h *harness) edit(text string) {
	h.surface.mu.Lock()
	h.surface.text = text
	h.surface.mu.Unlock()
	h.ctrl.MarkDirty()
}
