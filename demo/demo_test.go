package demo_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/demo"
)

// TestDynamicArray verifies the pop leaves only the first element.
func TestDynamicArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo.DynamicArray(&buf))

	assert.Equal(t, "== dynamic array ==\n5\n[arraylist] size=1 empty=false\n", buf.String())
}

// TestStack verifies LIFO order and that popping stops at empty.
func TestStack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo.Stack(&buf))

	assert.Equal(t,
		"== stack ==\nTypeScript JavaScript C++ Python\n[arraystack] size=0 empty=true\n",
		buf.String())
}

// TestList verifies the walkthrough output including the reported condition.
func TestList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo.List(&buf))

	want := "== linked list ==\n" +
		"append 5, 10: 5 -> 10 -> NULL\n" +
		"insert 2 at 1: 1 -> 2 -> 3 -> NULL\n" +
		"insert 9 at 0: 9 -> NULL\n" +
		"report: linkedlist: index out of range: 5 (length 2)\n" +
		"insert 42 at 5: 5 -> 10 -> NULL\n" +
		"[linkedlist] size=2 empty=false\n"
	assert.Equal(t, want, buf.String())
}

// TestRun verifies sections run in order.
func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo.Run(&buf))

	out := buf.String()
	arr := bytes.Index(buf.Bytes(), []byte("== dynamic array =="))
	st := bytes.Index(buf.Bytes(), []byte("== stack =="))
	ll := bytes.Index(buf.Bytes(), []byte("== linked list =="))
	assert.True(t, arr == 0 && arr < st && st < ll, "unexpected section order:\n%s", out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

var errWrite = errors.New("write failed")

// TestRun_WriteError ensures the first write error is returned.
func TestRun_WriteError(t *testing.T) {
	assert.ErrorIs(t, demo.Run(failingWriter{}), errWrite)
}
