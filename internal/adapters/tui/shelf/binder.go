package shelf

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"audioshelf/internal/adapters/covers"
	"audioshelf/internal/config"
	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

const (
	DefaultCoverCols = 8
	DefaultCoverRows = 4

	noDuration = "--:--"
)

// BinderConfig sizes the cover region and caps cover files
type BinderConfig struct {
	MaxImageSize int64 // Bytes; covers at or above it get the placeholder
	CoverCols    int
	CoverRows    int
}

// DefaultBinderConfig returns the default cover sizing
func DefaultBinderConfig() BinderConfig {
	return BinderConfig{
		MaxImageSize: config.DefaultMaxImageSize,
		CoverCols:    DefaultCoverCols,
		CoverRows:    DefaultCoverRows,
	}
}

// Binder paints books into slots
type Binder struct {
	covers    ports.CoverLoader
	selection ports.SelectionReader
	cfg       BinderConfig
	log       *zap.Logger
}

// NewBinder creates a binder. selection may be nil, in which case no row is
// ever marked as current.
func NewBinder(loader ports.CoverLoader, selection ports.SelectionReader, cfg BinderConfig, log *zap.Logger) *Binder {
	if cfg.CoverCols <= 0 {
		cfg.CoverCols = DefaultCoverCols
	}
	if cfg.CoverRows <= 0 {
		cfg.CoverRows = DefaultCoverRows
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Binder{
		covers:    loader,
		selection: selection,
		cfg:       cfg,
		log:       log,
	}
}

// CoverSize returns the cover region in terminal cells
func (b *Binder) CoverSize() (cols, rows int) {
	return b.cfg.CoverCols, b.cfg.CoverRows
}

// Bind fully paints book into s. The returned command, if any, finishes
// the cover asynchronously.
func (b *Binder) Bind(s *Slot, book domain.Book) tea.Cmd {
	s.bookID = book.ID
	s.Title = book.Name
	s.Author = book.Author
	s.AuthorVisible = book.HasAuthor()
	if s.AuthorVisible {
		s.TitleMaxLines = 1
	} else {
		s.TitleMaxLines = 2
	}
	s.CoverAnchor = book.CoverTransitionName()

	b.BindProgress(s, book)
	b.BindIndicator(s, book)
	return b.bindCover(s, book)
}

// BindProgress refreshes only the progress bar and time labels
func (b *Binder) BindProgress(s *Slot, book domain.Book) {
	s.Progress = book.Progress()
	s.Elapsed = domain.FormatTime(book.Position)
	if book.Duration <= 0 {
		s.Remaining = noDuration
		return
	}
	s.Remaining = domain.FormatTime(book.Remaining())
}

// BindIndicator recomputes the current-selection marker
func (b *Binder) BindIndicator(s *Slot, book domain.Book) {
	s.IndicatorVisible = false
	if b.selection != nil {
		s.IndicatorVisible = b.selection.IsCurrentSelection(book.ID)
	}
}

// Unbind clears s and abandons any load in flight
func (b *Binder) Unbind(s *Slot) {
	s.cancelLoad()
	*s = Slot{
		id:            s.id,
		position:      -1,
		gen:           s.gen,
		TitleMaxLines: 1,
	}
}

func (b *Binder) bindCover(s *Slot, book domain.Book) tea.Cmd {
	s.cancelLoad()
	s.coverKey = book.CoverKey
	gen := s.gen

	if !b.coverUsable(book.CoverKey) {
		// The placeholder goes in after the frame for this bind is drawn
		s.Cover = ""
		s.CoverState = CoverEmpty
		return afterRender(coverPlaceholderMsg{Slot: s.id, Generation: gen})
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.Cover = b.placeholder(book.Name)
	s.CoverState = CoverLoading

	return b.loadCover(ctx, s.id, gen, book.CoverKey)
}

func (b *Binder) coverUsable(key string) bool {
	if key == "" || b.covers == nil {
		return false
	}
	info, err := b.covers.Stat(context.Background(), key)
	if err != nil {
		b.log.Debug("cover stat failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !info.Readable {
		return false
	}
	if b.cfg.MaxImageSize > 0 && info.Size >= b.cfg.MaxImageSize {
		b.log.Debug("cover too large",
			zap.String("key", key),
			zap.Int64("size", info.Size),
			zap.Int64("max", b.cfg.MaxImageSize),
		)
		return false
	}
	return true
}

func (b *Binder) loadCover(ctx context.Context, slot int, gen uint64, key string) tea.Cmd {
	loader := b.covers
	limit := b.cfg.MaxImageSize
	cols, rows := b.cfg.CoverCols, b.cfg.CoverRows

	return func() tea.Msg {
		msg := CoverLoadedMsg{Slot: slot, Generation: gen, Key: key}

		data, err := loader.Load(ctx, key)
		if err != nil {
			msg.Err = err
			return msg
		}
		if limit > 0 && int64(len(data)) >= limit {
			msg.Err = fmt.Errorf("%w: %s", covers.ErrTooLarge, key)
			return msg
		}
		if err := ctx.Err(); err != nil {
			msg.Err = err
			return msg
		}

		msg.Art, msg.Err = covers.RenderArt(data, cols, rows)
		return msg
	}
}

// ApplyCover installs a finished load. It reports false when the message
// belongs to an older generation of the slot and was dropped.
func (b *Binder) ApplyCover(s *Slot, msg CoverLoadedMsg) bool {
	if msg.Generation != s.gen || msg.Key != s.coverKey {
		return false
	}
	s.cancel = nil

	if msg.Err != nil {
		b.log.Debug("cover load failed, using placeholder",
			zap.String("key", msg.Key),
			zap.Error(msg.Err),
		)
		s.Cover = b.placeholder(s.Title)
		s.CoverState = CoverPlaceholder
		return true
	}

	s.Cover = msg.Art
	s.CoverState = CoverImage
	return true
}

// applyPlaceholder installs a deferred placeholder unless the slot moved on
func (b *Binder) applyPlaceholder(s *Slot, msg coverPlaceholderMsg) bool {
	if msg.Generation != s.gen {
		return false
	}
	s.Cover = b.placeholder(s.Title)
	s.CoverState = CoverPlaceholder
	return true
}

func (b *Binder) placeholder(name string) string {
	return Placeholder(name, b.cfg.CoverCols, b.cfg.CoverRows)
}
