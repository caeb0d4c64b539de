// Package reconcile computes and replays edit scripts between two ordered
// lists whose elements carry a stable identity.
//
// Diff uses Myers' greedy O((N+M)·D) algorithm with move detection
// disabled: an element that changes place is reported as a Remove followed
// later by an Insert. Callers are expected to submit lists already in their
// final sort order, so moves are rare.
//
// # Edit scripts
//
// A Script is an ordered list of Insert, Remove and Change operations.
// Indices refer to the list as mutated by every earlier operation of the
// same script, and operations are emitted left to right. As a consequence,
// when an operation at index i is applied, the first i elements of the
// evolving list already equal the first i elements of the new list, which
// is what lets Apply and the shelf dispatcher look up inserted and changed
// elements by index in the new list.
//
// # Scaling
//
// The trace kept for backtracking grows with D·(N+M). That is comfortable
// for shelves of hundreds or a few thousand rows and is not meant for
// lists of millions of elements.
//
// # Preconditions
//
// Identities are unique within each list. Duplicates are not detected and
// produce an undefined (but still well-formed) script.
package reconcile
