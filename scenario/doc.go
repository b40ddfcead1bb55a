// Package scenario replays scripted list sessions written in YAML against a
// linkedlist.List[int] and checks their outcome.
//
// A script is a named sequence of steps:
//
//	name: splice-middle
//	steps:
//	  - {op: append, value: 1}
//	  - {op: append, value: 3}
//	  - {op: insert, value: 2, index: 1}
//	  - {op: print}
//	expect: [1, 2, 3]
//	expect_diagnostics: 0
//
// Operations:
//
//	append  value         – Append(NewNode(value))
//	insert  value, index  – Insert(NewNode(value), index)
//	print                 – Print() to the run's output
//	destroy               – Destroy(); the list is empty afterwards
//
// Failed inserts are part of a session, not failures of the run: their
// diagnostics are collected in Result.Diagnostics. A run only fails on a
// malformed script, an output error or an unmet expectation.
package scenario
