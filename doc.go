// Package lvlist is a small playground around a generic singly-linked list.
//
// 🚀 What is lvlist?
//
//	A focused, dependency-light module that brings together:
//		• linkedlist — the List[T] container: Append, Insert, Print, Destroy
//		• scenario   — YAML scripts replayed against a List[int]
//		• demo       — the sample session: dynamic array, stack, list walkthrough
//		• cmd/lvlist — command line front end for demo and scenario runs
//
// ✨ Why?
//
//   - Beginner-friendly – four operations, explicit ownership, no hidden state
//   - Observable failures – bad indexes are reported on an injectable Reporter
//   - Interoperable – List satisfies gods' containers.Container
//
// Quick ASCII example:
//
//	    head
//	     │
//	    [1]──►[2]──►[3]──► NULL
//
//	go install github.com/katalvlaran/lvlist/cmd/lvlist@latest
//	lvlist run --script scenario/testdata/splice.yaml
package lvlist
