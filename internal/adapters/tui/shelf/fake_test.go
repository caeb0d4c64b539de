package shelf

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

// fakeCovers is an in-memory cover loader that counts calls
type fakeCovers struct {
	data  map[string][]byte
	stats int
	ctxs  map[string]context.Context
}

func newFakeCovers() *fakeCovers {
	return &fakeCovers{
		data: make(map[string][]byte),
		ctxs: make(map[string]context.Context),
	}
}

func (f *fakeCovers) Stat(ctx context.Context, key string) (ports.CoverInfo, error) {
	f.stats++
	data, ok := f.data[key]
	if !ok {
		return ports.CoverInfo{}, nil
	}
	return ports.CoverInfo{Readable: true, Size: int64(len(data))}, nil
}

func (f *fakeCovers) Load(ctx context.Context, key string) ([]byte, error) {
	f.ctxs[key] = ctx
	data, ok := f.data[key]
	if !ok {
		return nil, errors.New("missing cover")
	}
	return data, nil
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x * 40), B: uint8(y * 40), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// drain runs cmd and every command it batches, collecting the messages
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// deliver feeds every message produced by cmd back into the adapter
func deliver(a *Adapter, cmd tea.Cmd) int {
	applied := 0
	for _, msg := range drain(cmd) {
		if a.HandleMsg(msg) {
			applied++
		}
	}
	return applied
}

type selection struct {
	current int64
}

func (s *selection) IsCurrentSelection(id int64) bool {
	return s.current == id
}

func newTestAdapter(covers ports.CoverLoader, sel ports.SelectionReader) *Adapter {
	cfg := DefaultBinderConfig()
	cfg.MaxImageSize = 1024
	return NewAdapter(NewBinder(covers, sel, cfg, nil), nil)
}

func book(id int64, name string, pos int64) domain.Book {
	return domain.Book{
		ID:       id,
		Name:     name,
		Author:   "Author " + name,
		Position: pos,
		Duration: 10,
		CoverKey: name + ".png",
	}
}

func bookIDs(a *Adapter) []int64 {
	ids := make([]int64, 0, len(a.slots))
	for _, s := range a.slots {
		ids = append(ids, s.BookID())
	}
	return ids
}

type errCovers struct{}

func (errCovers) Stat(ctx context.Context, key string) (ports.CoverInfo, error) {
	return ports.CoverInfo{}, errors.New("stat failed")
}

func (errCovers) Load(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("load failed")
}
