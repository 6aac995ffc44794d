// Package selectable provides an ordered list with a single optional
// selection and wraparound cursor movement.
package selectable

// List holds items in insertion order and at most one selected index.
// A present selection always indexes into Items.
type List[T any] struct {
	Items    []T
	selected int
	hasSel   bool
}

// New returns an empty list with no selection.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWith returns a list of items selecting the first one, if any.
func NewWith[T any](items []T) *List[T] {
	l := &List[T]{Items: items}
	if len(items) > 0 {
		l.hasSel = true
	}
	return l
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.Items)
}

// Index returns the selected index, if any.
func (l *List[T]) Index() (int, bool) {
	if !l.hasSel {
		return 0, false
	}
	return l.selected, true
}

// Selected returns a pointer to the item under the cursor.
func (l *List[T]) Selected() (*T, bool) {
	i, ok := l.Index()
	if !ok {
		return nil, false
	}
	return &l.Items[i], true
}

// Next moves the selection forward, wrapping from last to first.
func (l *List[T]) Next() {
	if len(l.Items) == 0 {
		return
	}
	if !l.hasSel {
		l.selectIndex(0)
		return
	}
	l.selectIndex((l.selected + 1) % len(l.Items))
}

// Previous moves the selection backward, wrapping from first to last.
func (l *List[T]) Previous() {
	if len(l.Items) == 0 {
		return
	}
	if !l.hasSel {
		l.selectIndex(0)
		return
	}
	if l.selected == 0 {
		l.selectIndex(len(l.Items) - 1)
		return
	}
	l.selectIndex(l.selected - 1)
}

// Unselect clears the selection.
func (l *List[T]) Unselect() {
	l.selected = 0
	l.hasSel = false
}

// Filter returns the items satisfying keep, in order.
func (l *List[T]) Filter(keep func(T) bool) []T {
	out := make([]T, 0, len(l.Items))
	for _, item := range l.Items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns how many items satisfy pred.
func (l *List[T]) Count(pred func(T) bool) int {
	n := 0
	for _, item := range l.Items {
		if pred(item) {
			n++
		}
	}
	return n
}

func (l *List[T]) selectIndex(i int) {
	l.selected = i
	l.hasSel = true
}
