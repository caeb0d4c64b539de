// Package shelf renders the book list as a column of recycled slots.
//
// Adapter owns the bound list and the slots. Every SubmitList diffs the
// bound list against the new one with package reconcile and replays the
// script on the slots, so rows that did not change are never rebound and a
// row whose progress moved only refreshes its progress bar.
//
// Binder paints one book into one slot. Cover images load asynchronously
// as tea.Cmds; each slot carries a generation that is bumped on every bind,
// and completions for an older generation are dropped. This keeps a late
// load from painting a cover onto a slot that has since been recycled.
//
// Everything here runs on the bubbletea update loop and is not safe for
// concurrent use.
package shelf
