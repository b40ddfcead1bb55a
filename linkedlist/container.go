package linkedlist

import "github.com/emirpasic/gods/containers"

// List satisfies the read side of gods' container contract, so it can be
// inspected by code written against containers.Container.
var _ containers.Container = (*List[int])(nil)

// Empty reports whether the list has no nodes.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Size is Len under the gods container name.
func (l *List[T]) Size() int {
	return l.Len()
}

// Clear is Destroy under the gods container name.
func (l *List[T]) Clear() {
	l.Destroy()
}

// Values returns the values in traversal order, boxed as interface{}.
func (l *List[T]) Values() []interface{} {
	out := make([]interface{}, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}
