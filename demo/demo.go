// Package demo replays a short sample session: a dynamic
// array, a stack of strings and a walkthrough of the linked list.
//
// Each section writes plain text to the supplied writer and ends with a
// one-line summary produced through gods' containers.Container, which the
// linked list satisfies alongside gods' own array list and stack.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/lvlist/linkedlist"
)

// Languages are pushed onto the stack in this order.
var Languages = []string{"Python", "C++", "JavaScript", "TypeScript"}

// printer remembers the first write error so sections can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// describe prints the container summary line.
func (p *printer) describe(name string, c containers.Container) {
	p.printf("[%s] size=%d empty=%t\n", name, c.Size(), c.Empty())
}

// Run writes every section to w and returns the first write error.
func Run(w io.Writer) error {
	for _, section := range []func(io.Writer) error{DynamicArray, Stack, List} {
		if err := section(w); err != nil {
			return err
		}
	}

	return nil
}

// DynamicArray pushes 5 and 10, pops the back element and prints the rest.
func DynamicArray(w io.Writer) error {
	p := &printer{w: w}
	p.printf("== dynamic array ==\n")

	arr := arraylist.New()
	arr.Add(5)
	arr.Add(10)
	arr.Remove(arr.Size() - 1)

	for _, v := range arr.Values() {
		p.printf("%v", v)
	}
	p.printf("\n")
	p.describe("arraylist", arr)

	return p.err
}

// Stack pushes Languages and pops until empty, printing in LIFO order.
func Stack(w io.Writer) error {
	p := &printer{w: w}
	p.printf("== stack ==\n")

	st := arraystack.New()
	for _, lang := range Languages {
		st.Push(lang)
	}

	popped := make([]string, 0, st.Size())
	for !st.Empty() {
		v, _ := st.Pop()
		popped = append(popped, v.(string))
	}
	p.printf("%s\n", strings.Join(popped, " "))
	p.describe("arraystack", st)

	return p.err
}

// List walks through append, splice, head insertion and a rejected insert,
// printing each list and every diagnostic it reports.
func List(w io.Writer) error {
	p := &printer{w: w}
	p.printf("== linked list ==\n")

	sink := linkedlist.ReporterFunc(func(msg string) { p.printf("report: %s\n", msg) })
	newList := func() *linkedlist.List[int] {
		return linkedlist.MustNew[int](linkedlist.WithReporter(sink), linkedlist.WithOutput(w))
	}

	a := newList()
	_ = a.Append(linkedlist.NewNode(5))
	_ = a.Append(linkedlist.NewNode(10))
	p.printf("append 5, 10: %s\n", a)

	b := newList()
	_ = b.Append(linkedlist.NewNode(1))
	_ = b.Append(linkedlist.NewNode(3))
	_ = b.Insert(linkedlist.NewNode(2), 1)
	p.printf("insert 2 at 1: %s\n", b)

	c := newList()
	_ = c.Insert(linkedlist.NewNode(9), 0)
	p.printf("insert 9 at 0: %s\n", c)

	_ = a.Insert(linkedlist.NewNode(42), 5)
	p.printf("insert 42 at 5: %s\n", a)
	p.describe("linkedlist", a)

	for _, l := range []*linkedlist.List[int]{a, b, c} {
		l.Destroy()
	}

	return p.err
}
