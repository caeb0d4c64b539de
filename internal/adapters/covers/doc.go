// Package covers loads cover images for the shelf.
//
// Two loaders implement ports.CoverLoader: FileLoader reads a local covers
// directory and ObjectLoader reads an S3-compatible bucket. RenderArt turns
// the raw bytes into terminal half-block art, and Watcher reports cover
// files that change on disk so the shelf can rebind the affected rows.
package covers
