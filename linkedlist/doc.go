// Package linkedlist provides a small, generic singly-linked list container
// with append, index-based insertion, ordered printing and teardown.
//
// 🚀 What is it?
//
//	A List[T] owns a forward chain of *Node[T]. Each node carries one value
//	(fixed at creation) and a link to the next node, nil for the tail.
//
//	    head
//	     │
//	     ▼
//	    [5]──►[10]──►[42]──► NULL
//
// ✨ Key features:
//   - Append(node)         — link node after the current tail.         O(n)
//   - Insert(node, index)  — splice node at a zero-based position.     O(index)
//   - Print() / String()   — "5 -> 10 -> 42 -> NULL", read-only.       O(n)
//   - Destroy() / Clear()  — release every node once, head to tail.    O(n)
//   - Len(), Empty(), Slice() and the gods containers.Container view.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlist/linkedlist"
//
//	l, err := linkedlist.New[int](
//		linkedlist.WithReporter(linkedlist.NewLogReporter(os.Stderr)),
//	)
//	if err != nil {
//		// only ErrOptionViolation is possible here
//	}
//	l.Append(linkedlist.NewNode(1))
//	l.Append(linkedlist.NewNode(3))
//	_ = l.Insert(linkedlist.NewNode(2), 1)
//	_ = l.Print() // 1 -> 2 -> 3 -> NULL
//
// Diagnostics:
//
//	Insert never panics on a bad index. The condition is reported on the
//	list's Reporter at the point of detection and the list is left unchanged:
//
//		ErrInvalidArgument  – index < 0
//		ErrIndexOutOfRange  – index > Len()
//		ErrNilNode          – nil node passed to Append or Insert
//
//	The same error is returned wrapped, so callers may match it with
//	errors.Is, but they are not required to inspect it.
//
// Ownership:
//
//	A node belongs to the list from the moment it is appended or inserted.
//	Callers must not keep mutating a node after handing it over, and a node
//	must never be added to two lists. Destroy unlinks every node, so stale
//	references observe a detached single node.
//
// Concurrency:
//
//	List is NOT safe for concurrent use. There is no internal locking;
//	callers that share a list across goroutines must serialize access.
//
// The zero value of List[T] is an empty list with default options.
package linkedlist
