// SPDX-License-Identifier: MIT

package linkedlist

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Append links n after the current tail; on an empty list n becomes head.
//
// n becomes the last element, so its link is reset to nil. A nil node is
// reported and ignored.
//
// Complexity: O(n) walk to the tail.
func (l *List[T]) Append(n *Node[T]) error {
	if n == nil {
		return l.fail(fmt.Errorf("%w: append", ErrNilNode))
	}
	n.next = nil

	if l.head == nil {
		l.head = n
		l.size++

		return nil
	}

	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = n
	l.size++

	return nil
}

// Insert splices n so that it ends up at the zero-based position index.
//
// Rules:
//
//	index < 0        → ErrInvalidArgument, list unchanged
//	index == 0       → n becomes head, followed by the previous head
//	0 < index <= Len → n is linked after the node at index-1
//	index > Len      → ErrIndexOutOfRange, list unchanged
//
// Every failure is reported on the list's Reporter before it is returned.
//
// Complexity: O(index).
func (l *List[T]) Insert(n *Node[T], index int) error {
	if n == nil {
		return l.fail(fmt.Errorf("%w: insert at %d", ErrNilNode, index))
	}
	if index < 0 {
		return l.fail(fmt.Errorf("%w: %d", ErrInvalidArgument, index))
	}

	if index == 0 {
		n.next = l.head
		l.head = n
		l.size++

		return nil
	}

	// Walk to position index-1, stopping early if the chain ends.
	prev := l.head
	for i := 0; prev != nil && i < index-1; i++ {
		prev = prev.next
	}
	if prev == nil {
		return l.fail(fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, l.size))
	}

	// Capture the remainder before overwriting prev's link.
	n.next = prev.next
	prev.next = n
	l.size++

	return nil
}

// Print writes the chain followed by a newline to the configured output.
func (l *List[T]) Print() error {
	_, err := fmt.Fprintln(l.output(), l.String())

	return err
}

// WriteTo writes the rendered chain, without a trailing newline, to w.
func (l *List[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, l.String())

	return int64(n), err
}

// String renders values in order, separated by the connector and
// terminated by the sentinel: "5 -> 10 -> NULL". An empty list renders as
// the sentinel alone.
func (l *List[T]) String() string {
	connector, sentinel := l.tokens()

	var sb strings.Builder
	for cur := l.head; cur != nil; cur = cur.next {
		fmt.Fprintf(&sb, "%v%s", cur.value, connector)
	}
	sb.WriteString(sentinel)

	return sb.String()
}

// Slice returns the values in traversal order. The result is a copy.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}

// Len returns the number of nodes owned by the list.
func (l *List[T]) Len() int {
	return l.size
}

// Destroy releases every node exactly once, from head to tail, unlinking
// each one and invoking the OnRelease hook. Destroying an empty list is a
// no-op. The list is empty and reusable afterwards.
//
// Complexity: O(n).
func (l *List[T]) Destroy() {
	release := l.opts.OnRelease
	pos := 0
	cur := l.head
	for cur != nil {
		next := cur.next
		cur.next = nil
		if release != nil {
			release(pos, cur.value)
		}
		pos++
		cur = next
	}
	l.head = nil
	l.size = 0
}

// fail reports err on the list's Reporter and returns it.
func (l *List[T]) fail(err error) error {
	l.reporter().Report(err.Error())

	return err
}

func (l *List[T]) reporter() Reporter {
	if l.opts.Reporter == nil {
		return DefaultReporter()
	}

	return l.opts.Reporter
}

func (l *List[T]) output() io.Writer {
	if l.opts.Output == nil {
		return os.Stdout
	}

	return l.opts.Output
}

func (l *List[T]) tokens() (connector, sentinel string) {
	connector, sentinel = l.opts.Connector, l.opts.Sentinel
	if connector == "" {
		connector = DefaultConnector
	}
	if sentinel == "" {
		sentinel = DefaultSentinel
	}

	return connector, sentinel
}
