package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"audioshelf/internal/domain"
)

// BenchmarkListBooks measures a full shelf read, the query the TUI repeats on every refresh
func BenchmarkListBooks(b *testing.B) {
	ctx := context.Background()
	lib := NewLibrary()
	if err := lib.Open(filepath.Join(b.TempDir(), "library.db")); err != nil {
		b.Fatalf("failed to open library: %v", err)
	}
	defer func() {
		if err := lib.Close(); err != nil {
			b.Fatalf("failed to close library: %v", err)
		}
	}()

	for i := 0; i < 500; i++ {
		if _, err := lib.AddBook(ctx, domain.Book{Name: fmt.Sprintf("Book %03d", i), Duration: 1000}); err != nil {
			b.Fatalf("add failed: %v", err)
		}
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := lib.ListBooks(ctx); err != nil {
			b.Fatalf("list failed: %v", err)
		}
	}
}
