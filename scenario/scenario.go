package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlist/linkedlist"
)

// Parse decodes and validates a YAML script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}

		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// Validate checks that every step names a known op with the fields it needs.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	for i, st := range s.Steps {
		switch st.Op {
		case OpAppend:
			if st.Value == nil {
				return fmt.Errorf("%w: step %d (%s) needs value", ErrMissingField, i, st.Op)
			}
		case OpInsert:
			if st.Value == nil {
				return fmt.Errorf("%w: step %d (%s) needs value", ErrMissingField, i, st.Op)
			}
			if st.Index == nil {
				return fmt.Errorf("%w: step %d (%s) needs index", ErrMissingField, i, st.Op)
			}
		case OpPrint, OpDestroy:
		default:
			return fmt.Errorf("%w: step %d: %q", ErrUnknownOp, i, st.Op)
		}
	}

	return nil
}

// Run replays s against a fresh list, printing to out.
//
// The returned Result is non-nil whenever the script could be executed,
// including when an expectation fails (err wraps ErrExpectationFailed).
func Run(s *Script, out io.Writer, opts ...RunOption) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	o := DefaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rec := &linkedlist.Recorder{}
	listOpts := []linkedlist.Option{
		linkedlist.WithReporter(linkedlist.Tee(rec, o.Reporter)),
		linkedlist.WithOutput(out),
	}
	if s.Connector != "" {
		listOpts = append(listOpts, linkedlist.WithConnector(s.Connector))
	}
	if s.Sentinel != "" {
		listOpts = append(listOpts, linkedlist.WithSentinel(s.Sentinel))
	}
	l, err := linkedlist.New[int](listOpts...)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer l.Destroy()

	res := &Result{Name: s.Name}
	for i, st := range s.Steps {
		o.OnStep(i, st)
		switch st.Op {
		case OpAppend:
			// only ErrNilNode is possible and NewNode never returns nil
			_ = l.Append(linkedlist.NewNode(*st.Value))
		case OpInsert:
			// reported on rec; a failed insert does not stop the session
			_ = l.Insert(linkedlist.NewNode(*st.Value), *st.Index)
		case OpPrint:
			if err := l.Print(); err != nil {
				return nil, fmt.Errorf("scenario: step %d (%s): %w", i, st, err)
			}
			res.Printed++
		case OpDestroy:
			l.Destroy()
		}
	}
	res.Values = l.Slice()
	res.Diagnostics = rec.Messages()

	return res, s.check(res)
}

// check compares res with the script's expectations.
func (s *Script) check(res *Result) error {
	if s.Expect != nil && !slices.Equal(*s.Expect, res.Values) {
		return fmt.Errorf("%w: values %v, want %v", ErrExpectationFailed, res.Values, *s.Expect)
	}
	if s.ExpectDiagnostics != nil && *s.ExpectDiagnostics != len(res.Diagnostics) {
		return fmt.Errorf("%w: %d diagnostics, want %d", ErrExpectationFailed,
			len(res.Diagnostics), *s.ExpectDiagnostics)
	}

	return nil
}
