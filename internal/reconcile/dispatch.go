package reconcile

import "fmt"

// Callback receives the operations of a script, in order
type Callback interface {
	OnInserted(pos, count int)
	OnRemoved(pos, count int)
	OnChanged(pos, count int, payload any)
}

// Dispatch feeds every operation of s to cb
func Dispatch(s Script, cb Callback) {
	for _, op := range s {
		switch op.Kind {
		case Insert:
			cb.OnInserted(op.At, op.Count)
		case Remove:
			cb.OnRemoved(op.At, op.Count)
		case Change:
			cb.OnChanged(op.At, op.Count, op.Payload)
		}
	}
}

// CheckBounds verifies that op fits a list of the given length
func CheckBounds(op Op, length int) error {
	limit := length
	if op.Kind == Insert {
		limit = length + 1
	}
	if op.At < 0 || op.Count <= 0 || op.At >= limit {
		return fmt.Errorf("%w: %s on length %d", ErrIndexOutOfRange, op, length)
	}
	if op.Kind != Insert && op.At+op.Count > length {
		return fmt.Errorf("%w: %s on length %d", ErrIndexOutOfRange, op, length)
	}
	return nil
}

// Apply replays s on a copy of list. Inserted and changed elements are
// taken from target, the list the script was computed against.
func Apply[T any](list []T, s Script, target []T) ([]T, error) {
	out := make([]T, len(list), len(list)+len(target))
	copy(out, list)

	for _, op := range s {
		if err := CheckBounds(op, len(out)); err != nil {
			return nil, err
		}
		if op.Kind != Remove && op.At+op.Count > len(target) {
			return nil, fmt.Errorf("%w: %s against target of length %d", ErrIndexOutOfRange, op, len(target))
		}

		switch op.Kind {
		case Insert:
			tail := append([]T(nil), out[op.At:]...)
			out = append(append(out[:op.At], target[op.At:op.At+op.Count]...), tail...)
		case Remove:
			out = append(out[:op.At], out[op.At+op.Count:]...)
		case Change:
			copy(out[op.At:op.At+op.Count], target[op.At:op.At+op.Count])
		}
	}
	return out, nil
}
