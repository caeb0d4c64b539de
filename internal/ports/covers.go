package ports

import "context"

// CoverInfo describes a cover resource without reading it
type CoverInfo struct {
	Readable bool
	Size     int64 // Bytes
}

// CoverLoader fetches cover images by key
type CoverLoader interface {
	// Stat reports whether the cover can be read and how large it is.
	// A missing cover is not an error: it reports Readable == false.
	Stat(ctx context.Context, key string) (CoverInfo, error)

	// Load returns the raw image bytes. It must honour ctx cancellation.
	Load(ctx context.Context, key string) ([]byte, error)
}

// CoverOpener shows a cover in an application outside the terminal
type CoverOpener interface {
	OpenCover(key string) error
}
