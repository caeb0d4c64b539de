package reconcile

// Policy decides identity and content equality for list elements
type Policy[T any] interface {
	// SameItem reports whether a and b are the same element (same row).
	SameItem(a, b T) bool
	// SameContent reports whether a matched element can be left untouched.
	// It is only consulted when SameItem is true.
	SameContent(a, b T) bool
}

// Payloader is implemented by policies that can describe a content change.
// A nil payload asks the receiver for a full rebind.
type Payloader[T any] interface {
	ChangePayload(old, next T) any
}

type stepKind uint8

const (
	stepMatch stepKind = iota
	stepDelete
	stepInsert
)

type step struct {
	kind stepKind
	x, y int // Index in old (match, delete) and next (match, insert)
}

// Diff returns the edit script turning old into next
func Diff[T any](old, next []T, p Policy[T]) Script {
	n, m := len(old), len(next)
	switch {
	case n == 0 && m == 0:
		return nil
	case n == 0:
		return Script{{Kind: Insert, At: 0, Count: m}}
	case m == 0:
		return Script{{Kind: Remove, At: 0, Count: n}}
	}

	steps := shortestEdit(old, next, p.SameItem)
	return buildScript(old, next, steps, p)
}

// shortestEdit runs the forward Myers search and backtracks through the
// recorded frontiers. Steps are returned in list order.
func shortestEdit[T any](a, b []T, same func(a, b T) bool) []step {
	n, m := len(a), len(b)
	max := n + m
	offset := max + 1
	v := make([]int, 2*max+3)
	var trace [][]int

search:
	for d := 0; d <= max; d++ {
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && same(a[x], b[y]) {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				break search
			}
		}
	}

	steps := make([]step, 0, max)
	x, y := n, m
	for d := len(trace) - 1; d >= 0; d-- {
		frontier := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && frontier[offset+k-1] < frontier[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := frontier[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			steps = append(steps, step{kind: stepMatch, x: x, y: y})
		}
		if d > 0 {
			if x == prevX {
				steps = append(steps, step{kind: stepInsert, x: x, y: prevY})
			} else {
				steps = append(steps, step{kind: stepDelete, x: prevX, y: y})
			}
		}
		x, y = prevX, prevY
	}

	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// buildScript walks the steps left to right keeping the cursor in the
// evolving list. Within one gap between matches every removal is emitted
// before the insertions.
func buildScript[T any](old, next []T, steps []step, p Policy[T]) Script {
	payloader, _ := p.(Payloader[T])

	var s Script
	pos := 0
	for i := 0; i < len(steps); {
		st := steps[i]
		if st.kind == stepMatch {
			if !p.SameContent(old[st.x], next[st.y]) {
				var payload any
				if payloader != nil {
					payload = payloader.ChangePayload(old[st.x], next[st.y])
				}
				s = s.add(Op{Kind: Change, At: pos, Count: 1, Payload: payload})
			}
			pos++
			i++
			continue
		}

		removed, inserted := 0, 0
		for ; i < len(steps) && steps[i].kind != stepMatch; i++ {
			if steps[i].kind == stepDelete {
				removed++
			} else {
				inserted++
			}
		}
		s = s.add(Op{Kind: Remove, At: pos, Count: removed})
		s = s.add(Op{Kind: Insert, At: pos, Count: inserted})
		pos += inserted
	}
	return s
}
