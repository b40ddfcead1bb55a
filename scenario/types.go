package scenario

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlist/linkedlist"
)

// Sentinel errors for script parsing and execution.
var (
	// ErrEmptyScript indicates a document with no steps.
	ErrEmptyScript = errors.New("scenario: script has no steps")

	// ErrUnknownOp indicates a step with an unsupported op.
	ErrUnknownOp = errors.New("scenario: unknown op")

	// ErrMissingField indicates a step lacking a value or index its op needs.
	ErrMissingField = errors.New("scenario: missing field")

	// ErrExpectationFailed indicates the final state differs from the script's expectations.
	ErrExpectationFailed = errors.New("scenario: expectation failed")
)

// Op names a list operation in a script.
type Op string

// Supported operations.
const (
	OpAppend  Op = "append"
	OpInsert  Op = "insert"
	OpPrint   Op = "print"
	OpDestroy Op = "destroy"
)

// Script is a decoded scenario document.
type Script struct {
	Name      string `yaml:"name"`
	Connector string `yaml:"connector,omitempty"`
	Sentinel  string `yaml:"sentinel,omitempty"`
	Steps     []Step `yaml:"steps"`

	// Expect, when present, is the traversal the list must end with.
	// A pointer so that "expect: []" (must end empty) differs from no expectation.
	Expect *[]int `yaml:"expect,omitempty"`

	// ExpectDiagnostics, when present, is the number of reported conditions.
	ExpectDiagnostics *int `yaml:"expect_diagnostics,omitempty"`
}

// Step is one operation of a Script.
type Step struct {
	Op    Op   `yaml:"op"`
	Value *int `yaml:"value,omitempty"`
	Index *int `yaml:"index,omitempty"`
}

// String renders the step for logs: "append 5", "insert 2 at 1", "print".
func (s Step) String() string {
	switch s.Op {
	case OpAppend:
		if s.Value != nil {
			return fmt.Sprintf("append %d", *s.Value)
		}
	case OpInsert:
		if s.Value != nil && s.Index != nil {
			return fmt.Sprintf("insert %d at %d", *s.Value, *s.Index)
		}
	}

	return string(s.Op)
}

// Result summarizes a run.
type Result struct {
	// Name is the script name.
	Name string

	// Values is the traversal of the list after the last step.
	Values []int

	// Diagnostics holds every message reported by the list, in order.
	Diagnostics []string

	// Printed counts executed print steps.
	Printed int
}

// RunOption configures Run.
type RunOption func(*RunOptions)

// RunOptions holds the optional collaborators of a run.
type RunOptions struct {
	// Reporter additionally receives every diagnostic as it is reported.
	Reporter linkedlist.Reporter

	// OnStep is called before each step with its zero-based position.
	OnStep func(i int, step Step)
}

// DefaultRunOptions returns RunOptions that forward nothing and ignore steps.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Reporter: linkedlist.Discard,
		OnStep:   func(int, Step) {},
	}
}

// WithReporter forwards diagnostics to r as well. A nil reporter is ignored.
func WithReporter(r linkedlist.Reporter) RunOption {
	return func(o *RunOptions) {
		if r != nil {
			o.Reporter = r
		}
	}
}

// WithOnStep registers a per-step hook.
func WithOnStep(fn func(i int, step Step)) RunOption {
	return func(o *RunOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
