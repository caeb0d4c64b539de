package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Book is an immutable snapshot of one shelf row.
// Within a single list every ID must be unique; nothing checks this.
type Book struct {
	ID       int64  // Stable, never reused
	Name     string // Display name
	Author   string // Optional, empty when unknown
	Position int64  // Playback position in milliseconds
	Duration int64  // Total length in milliseconds
	CoverKey string // Key of the cover resource (file name or object name)
}

// HasAuthor reports whether the book carries a secondary label
func (b Book) HasAuthor() bool {
	return strings.TrimSpace(b.Author) != ""
}

// Progress returns Position/Duration clamped to [0, 1].
// A book with no duration has no representable progress and reports 0.
func (b Book) Progress() float64 {
	if b.Duration <= 0 {
		return 0
	}
	p := float64(b.Position) / float64(b.Duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Remaining returns the milliseconds left to play, never negative
func (b Book) Remaining() int64 {
	if b.Duration <= 0 || b.Position >= b.Duration {
		return 0
	}
	if b.Position < 0 {
		return b.Duration
	}
	return b.Duration - b.Position
}

// Finished reports whether playback reached the end
func (b Book) Finished() bool {
	return b.Duration > 0 && b.Position >= b.Duration
}

// CoverTransitionName is a per-book anchor name for the cover region
func (b Book) CoverTransitionName() string {
	return fmt.Sprintf("bookCoverTransition%d", b.ID)
}

// SortBooks orders books by name, then by ID for ties.
// The shelf expects lists to arrive in this order.
func SortBooks(books []Book) {
	slices.SortStableFunc(books, func(a, b Book) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
