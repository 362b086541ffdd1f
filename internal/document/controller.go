package document

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultImportURL = "https://playground.wordpress.net/blueprint-schema.json"
	DefaultSaveName  = "my-blueprint.json"
)

var openExtensions = []string{".json"}

// Controller is the single owner of the open Document. Operations must be
// called from one goroutine, normally through Run.
type Controller struct {
	surface Surface
	store   Store
	fetcher Fetcher
	recents Recents
	log     *zap.Logger

	defaultURL      string
	defaultSaveName string
	onQuitDeclined  func()

	mu       sync.Mutex
	doc      Document
	saveOn   bool
	saveAsOn bool
	loads    uint64
}

type Option func(*Controller)

func WithStore(s Store) Option { return func(c *Controller) { c.store = s } }

func WithFetcher(f Fetcher) Option { return func(c *Controller) { c.fetcher = f } }

func WithRecents(r Recents) Option { return func(c *Controller) { c.recents = r } }

func WithLogger(l *zap.Logger) Option { return func(c *Controller) { c.log = l } }

func WithDefaultURL(url string) Option { return func(c *Controller) { c.defaultURL = url } }

func WithDefaultSaveName(name string) Option {
	return func(c *Controller) { c.defaultSaveName = name }
}

// WithQuitDeclined registers fn to run each time the quit guard is declined.
func WithQuitDeclined(fn func()) Option { return func(c *Controller) { c.onQuitDeclined = fn } }

func NewController(surface Surface, opts ...Option) *Controller {
	c := &Controller{
		surface:         surface,
		store:           FileStore{},
		recents:         nopRecents{},
		log:             zap.NewNop(),
		defaultURL:      DefaultImportURL,
		defaultSaveName: DefaultSaveName,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("document")
	return c
}

// Document returns a snapshot of the open document.
func (c *Controller) Document() Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc
}

// Affordances returns the currently enabled save commands. Save is never
// reported while the document has no path.
func (c *Controller) Affordances() Affordances {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.affordancesLocked()
}

func (c *Controller) affordancesLocked() Affordances {
	return Affordances{
		Save:   c.saveOn && c.doc.Path != "",
		SaveAs: c.saveAsOn,
	}
}

type state struct {
	doc      Document
	saveOn   bool
	saveAsOn bool
}

func (c *Controller) snapshot() state {
	c.mu.Lock()
	defer c.mu.Unlock()
	return state{doc: c.doc, saveOn: c.saveOn, saveAsOn: c.saveAsOn}
}

// restore puts st back and republishes the affordances it implies.
func (c *Controller) restore(st state) {
	c.update(func() {
		c.doc = st.doc
		c.saveOn = st.saveOn
		c.saveAsOn = st.saveAsOn
	})
}

func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	aff := c.affordancesLocked()
	c.mu.Unlock()
	c.surface.SetAffordances(aff)
}

// ConfirmDiscard reports whether the open document may be dropped for a.
// A clean document is always discardable. A dialog failure counts as "no".
func (c *Controller) ConfirmDiscard(ctx context.Context, a Action) bool {
	if !c.Document().Dirty {
		return true
	}

	ok, err := c.surface.Confirm(ctx, discardTitle, discardMessage(a))
	if err != nil {
		if !errors.Is(err, ErrCancelled) {
			c.log.Warn("confirmation failed", zap.String("action", string(a)), zap.Error(err))
		}
		return false
	}
	c.log.Debug("discard confirmation", zap.String("action", string(a)), zap.Bool("confirmed", ok))
	return ok
}

func (c *Controller) NewDocument(ctx context.Context) error {
	if !c.ConfirmDiscard(ctx, ActionNew) {
		return ErrCancelled
	}

	c.load("")
	c.update(func() {
		c.doc = Document{}
		c.saveOn = false
		c.saveAsOn = true
	})
	c.log.Info("new document")
	return nil
}

// OpenDocument loads path, or the file the user picks when path is empty.
// On failure the open document is left as it was.
func (c *Controller) OpenDocument(ctx context.Context, path string) error {
	if !c.ConfirmDiscard(ctx, ActionOpen) {
		return ErrCancelled
	}

	if path == "" {
		picked, err := c.surface.ChooseOpenPath(ctx, openExtensions)
		if err != nil {
			return err
		}
		if picked == "" {
			return ErrCancelled
		}
		path = picked
	}

	data, err := c.store.ReadFile(path)
	if err != nil {
		c.publish()
		return &FileReadError{Path: path, Err: err}
	}

	if err := c.recents.Add(path); err != nil {
		c.log.Warn("failed to record recent document", zap.String("path", path), zap.Error(err))
	}

	content := string(data)
	c.load(content)
	c.update(func() {
		c.doc = Document{Path: path, Content: content}
		c.saveOn = true
		c.saveAsOn = true
	})
	c.log.Info("opened document", zap.String("path", path), zap.Int("bytes", len(data)))
	c.surface.Notify(Notice{Level: LevelInfo, Text: "Opened " + path})
	return nil
}

// ImportFromURL replaces the document with a JSON body fetched from a URL
// the user enters. The imported document has no path.
func (c *Controller) ImportFromURL(ctx context.Context) error {
	if !c.ConfirmDiscard(ctx, ActionImport) {
		return ErrCancelled
	}
	if c.fetcher == nil {
		return &ImportError{Err: errors.New("no fetcher configured")}
	}

	url, err := c.surface.PromptURL(ctx, c.defaultURL)
	if err != nil {
		return err
	}
	if url == "" {
		return ErrCancelled
	}

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		c.publish()
		return &ImportError{URL: url, Err: err}
	}
	content, err := FormatImport(body)
	if err != nil {
		c.publish()
		return &ImportError{URL: url, Err: err}
	}

	c.load(content)
	c.update(func() {
		c.doc = Document{Content: content}
		c.saveOn = true
		c.saveAsOn = true
	})
	c.log.Info("imported document", zap.String("url", url), zap.Int("bytes", len(content)))
	c.surface.Notify(Notice{Level: LevelInfo, Text: "Imported " + url})
	return nil
}

// SaveDocument writes the live editor text to the document path.
func (c *Controller) SaveDocument(ctx context.Context) error {
	prev := c.snapshot()
	path := prev.doc.Path
	if path == "" {
		c.log.Warn("save requested without a path; use save as")
		return ErrNoPath
	}

	text, err := c.surface.Text(ctx)
	if err != nil {
		c.restore(prev)
		return errors.Wrap(err, "failed to read editor content")
	}

	if err := c.store.WriteFile(path, []byte(text)); err != nil {
		c.restore(prev)
		return &FileWriteError{Path: path, Err: err}
	}

	c.update(func() {
		c.doc.Content = text
		c.doc.Dirty = false
		c.saveOn = false
	})
	c.log.Info("saved document", zap.String("path", path), zap.Int("bytes", len(text)))
	c.surface.Notify(Notice{Level: LevelInfo, Text: "Saved " + path})
	return nil
}

// SaveDocumentAs asks for a destination and saves there. The previous path
// is kept if the save fails.
func (c *Controller) SaveDocumentAs(ctx context.Context) error {
	prev := c.snapshot()

	def := prev.doc.Path
	if def == "" {
		def = c.defaultSaveName
	}
	path, err := c.surface.ChooseSavePath(ctx, def)
	if err != nil {
		return err
	}
	if path == "" {
		return ErrCancelled
	}

	c.mu.Lock()
	c.doc.Path = path
	c.mu.Unlock()

	if err := c.SaveDocument(ctx); err != nil {
		c.restore(prev)
		return err
	}
	return nil
}

// MarkDirty records a content change in the surface.
func (c *Controller) MarkDirty() {
	c.mu.Lock()
	wasDirty := c.doc.Dirty
	c.mu.Unlock()

	c.update(func() {
		c.doc.Dirty = true
		c.saveOn = true
		c.saveAsOn = true
	})
	if !wasDirty {
		c.log.Debug("document became dirty")
	}
}

// OnQuitRequested runs the quit guard and tells the surface to quit when it
// passes.
func (c *Controller) OnQuitRequested(ctx context.Context) bool {
	if !c.ConfirmDiscard(ctx, ActionQuit) {
		c.log.Info("quit cancelled")
		if c.onQuitDeclined != nil {
			c.onQuitDeclined()
		}
		return false
	}
	c.log.Info("quitting")
	c.surface.Quit()
	return true
}

// load sends content to the surface under a new generation.
func (c *Controller) load(content string) {
	c.mu.Lock()
	c.loads++
	gen := c.loads
	c.mu.Unlock()
	c.surface.Load(gen, content)
}

func (c *Controller) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loads
}

func (c *Controller) publish() {
	c.surface.SetAffordances(c.Affordances())
}
