package reconcile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrIndexOutOfRange reports an operation that does not fit the list it is
// applied to. It always means the script and the list have diverged.
var ErrIndexOutOfRange = errors.New("edit script index out of range")

// Kind is the type of an edit operation
type Kind uint8

const (
	Insert Kind = iota + 1
	Remove
	Change
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "Insert"
	case Remove:
		return "Remove"
	case Change:
		return "Change"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Op is a single edit on a contiguous range of the evolving list
type Op struct {
	Kind    Kind
	At      int
	Count   int
	Payload any // Only set on Change, nil means "rebind fully"
}

func (o Op) String() string {
	if o.Kind == Change && o.Payload != nil {
		return fmt.Sprintf("%s(at:%d,count:%d,payload:%v)", o.Kind, o.At, o.Count, o.Payload)
	}
	return fmt.Sprintf("%s(at:%d,count:%d)", o.Kind, o.At, o.Count)
}

// Script is an ordered edit script
type Script []Op

// Empty reports whether applying the script is a no-op
func (s Script) Empty() bool {
	return len(s) == 0
}

func (s Script) String() string {
	parts := make([]string, len(s))
	for i, op := range s {
		parts[i] = op.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Counts returns the number of inserted, removed and changed elements
func (s Script) Counts() (inserted, removed, changed int) {
	for _, op := range s {
		switch op.Kind {
		case Insert:
			inserted += op.Count
		case Remove:
			removed += op.Count
		case Change:
			changed += op.Count
		}
	}
	return
}

// add appends op, merging it into the previous operation when both cover
// adjacent ranges of the same kind.
func (s Script) add(op Op) Script {
	if op.Count <= 0 {
		return s
	}
	if n := len(s); n > 0 {
		last := &s[n-1]
		if last.Kind == op.Kind {
			switch op.Kind {
			case Remove:
				if last.At == op.At {
					last.Count += op.Count
					return s
				}
			case Insert:
				if last.At+last.Count == op.At {
					last.Count += op.Count
					return s
				}
			case Change:
				if last.At+last.Count == op.At && samePayload(last.Payload, op.Payload) {
					last.Count += op.Count
					return s
				}
			}
		}
	}
	return append(s, op)
}

func samePayload(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
