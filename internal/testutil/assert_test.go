package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertionsPass(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3}, "slices")
	AssertEqual(t, chess.MustCell("e4"), chess.Cell{File: 4, Rank: 4})
	AssertNoError(t, nil)
	AssertErrorIs(t, errors.Wrap(errors.ErrGameOver, "move"), errors.ErrGameOver)
	AssertContains(t, "hello world", "world")
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
}

func TestAssertionsReportFailures(t *testing.T) {
	tests := []struct {
		name   string
		assert func(r *recorder)
		want   string
	}{
		{"equal", func(r *recorder) { AssertEqual(r, 1, 2, "count") }, "count: mismatch"},
		{"no error", func(r *recorder) { AssertNoError(r, errors.ErrGameOver) }, "unexpected error: game is over"},
		{"error is", func(r *recorder) { AssertErrorIs(r, nil, errors.ErrNoLegalMove, "play") }, "play: error <nil> does not wrap"},
		{"contains", func(r *recorder) { AssertContains(r, "abc", "z") }, `"abc" does not contain "z"`},
		{"true", func(r *recorder) { AssertTrue(r, false, "ply %d", 3) }, "ply 3: expected true"},
		{"false", func(r *recorder) { AssertFalse(r, true) }, "expected false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.assert(r)
			if len(r.failures) != 1 {
				t.Fatalf("recorded %d failures; want 1", len(r.failures))
			}
			AssertContains(t, r.failures[0], tt.want)
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
