package linkedlist_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlist/linkedlist"
)

// ExampleList_Append builds a two-element list and prints it.
func ExampleList_Append() {
	l := linkedlist.MustNew[int](linkedlist.WithOutput(os.Stdout))
	_ = l.Append(linkedlist.NewNode(5))
	_ = l.Append(linkedlist.NewNode(10))
	_ = l.Print()
	// Output:
	// 5 -> 10 -> NULL
}

// ExampleList_Insert splices a node into the middle and at the head.
func ExampleList_Insert() {
	l := linkedlist.MustNew[int](linkedlist.WithOutput(os.Stdout))
	_ = l.Append(linkedlist.NewNode(1))
	_ = l.Append(linkedlist.NewNode(3))
	_ = l.Insert(linkedlist.NewNode(2), 1)
	_ = l.Insert(linkedlist.NewNode(0), 0)
	_ = l.Print()
	// Output:
	// 0 -> 1 -> 2 -> 3 -> NULL
}

// ExampleList_Insert_outOfRange shows a failed insert reported on the sink
// while the list stays unchanged.
func ExampleList_Insert_outOfRange() {
	sink := linkedlist.ReporterFunc(func(msg string) { fmt.Println("report:", msg) })
	l := linkedlist.MustNew[int](linkedlist.WithReporter(sink), linkedlist.WithOutput(os.Stdout))
	_ = l.Append(linkedlist.NewNode(1))
	_ = l.Append(linkedlist.NewNode(2))

	_ = l.Insert(linkedlist.NewNode(42), 5)
	_ = l.Insert(linkedlist.NewNode(42), -1)
	_ = l.Print()
	// Output:
	// report: linkedlist: index out of range: 5 (length 2)
	// report: linkedlist: invalid index: -1
	// 1 -> 2 -> NULL
}

// ExampleList_Destroy releases nodes head to tail.
func ExampleList_Destroy() {
	l := linkedlist.MustNew[string](linkedlist.WithOnRelease(func(pos int, v any) {
		fmt.Printf("release #%d %v\n", pos, v)
	}))
	_ = l.Append(linkedlist.NewNode("a"))
	_ = l.Append(linkedlist.NewNode("b"))
	l.Destroy()
	fmt.Println(l.String())
	// Output:
	// release #0 a
	// release #1 b
	// NULL
}
