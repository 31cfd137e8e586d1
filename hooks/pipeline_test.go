package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(trace *[]string, name string) Func {
	return func(ctx context.Context, hc *Context) error {
		*trace = append(*trace, name)
		return nil
	}
}

func okAction(code int) func(context.Context) (int, error) {
	return func(context.Context) (int, error) { return code, nil }
}

func TestPipeline_OrderAndTieBreaks(t *testing.T) {
	var trace []string

	p := NewPipeline(
		[]Descriptor{
			{Stage: StageBefore, Order: 10, Fn: record(&trace, "b10")},
			{Stage: StageBefore, Order: 5, Fn: record(&trace, "b5-first")},
			{Stage: StageAfter, Order: 1, Fn: record(&trace, "a1")},
		},
		[]Descriptor{
			{Stage: StageBefore, Order: 5, Fn: record(&trace, "b5-second")},
			{Stage: StageAfter, Order: 0, Fn: record(&trace, "a0")},
		},
	)

	outcome, err := p.Run(context.Background(), NewContext(), func(ctx context.Context) (int, error) {
		trace = append(trace, "action")
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, Completed, outcome.State)
	assert.Equal(t, []string{"b5-first", "b5-second", "b10", "action", "a0", "a1"}, trace)
}

func TestPipeline_BeforeHookCancels(t *testing.T) {
	var trace []string

	p := NewPipeline([]Descriptor{
		{Stage: StageBefore, Order: 0, Fn: func(ctx context.Context, hc *Context) error {
			hc.Cancel("maintenance window")
			return nil
		}},
		{Stage: StageBefore, Order: 1, Fn: record(&trace, "late-before")},
		{Stage: StageAfter, Order: 0, Fn: record(&trace, "after")},
	})

	outcome, err := p.Run(context.Background(), NewContext(), func(ctx context.Context) (int, error) {
		trace = append(trace, "action")
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, Cancelled, outcome.State)
	assert.Equal(t, "maintenance window", outcome.CancelMessage)
	assert.Empty(t, trace, "remaining before hooks, the action and after hooks are skipped")
}

func TestPipeline_AfterHooksSeeResult(t *testing.T) {
	var seen int

	p := NewPipeline([]Descriptor{
		{Stage: StageAfter, Order: 0, Fn: func(ctx context.Context, hc *Context) error {
			seen = hc.Result()
			return nil
		}},
	})

	outcome, err := p.Run(context.Background(), NewContext(), okAction(42))
	require.NoError(t, err)
	assert.Equal(t, 42, outcome.Code)
	assert.Equal(t, 42, seen)
}

func TestPipeline_ErrorHandledStopsPropagation(t *testing.T) {
	boom := errors.New("boom")
	var trace []string

	p := NewPipeline([]Descriptor{
		{Stage: StageOnError, Order: 0, Fn: func(ctx context.Context, hc *Context) error {
			trace = append(trace, "decline")
			return nil
		}},
		{Stage: StageOnError, Order: 1, Fn: func(ctx context.Context, hc *Context) error {
			trace = append(trace, "handle")
			assert.Equal(t, boom, hc.Err())
			hc.MarkHandled()
			hc.SetResult(0)
			return nil
		}},
		{Stage: StageOnError, Order: 2, Fn: func(ctx context.Context, hc *Context) error {
			trace = append(trace, "unreached")
			return nil
		}},
	})

	outcome, err := p.Run(context.Background(), NewContext(), func(context.Context) (int, error) {
		return 0, boom
	})
	require.NoError(t, err)
	assert.Equal(t, Completed, outcome.State)
	assert.Equal(t, []string{"decline", "handle"}, trace)
}

func TestPipeline_UnhandledErrorPropagates(t *testing.T) {
	boom := errors.New("boom")

	p := NewPipeline([]Descriptor{
		{Stage: StageOnError, Order: 0, Fn: func(ctx context.Context, hc *Context) error {
			return nil // declines
		}},
	})

	outcome, err := p.Run(context.Background(), NewContext(), func(context.Context) (int, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, ErrorHandling, outcome.State)
}

func TestPipeline_ErrorHookMayReplaceError(t *testing.T) {
	wrapped := errors.New("wrapped")

	p := NewPipeline([]Descriptor{
		{Stage: StageOnError, Order: 0, Fn: func(ctx context.Context, hc *Context) error {
			return wrapped
		}},
	})

	_, err := p.Run(context.Background(), NewContext(), func(context.Context) (int, error) {
		return 0, errors.New("original")
	})
	require.ErrorIs(t, err, wrapped)
}

func TestPipeline_SharedContextThreadsThrough(t *testing.T) {
	p := NewPipeline([]Descriptor{
		{Stage: StageBefore, Order: 0, Fn: func(ctx context.Context, hc *Context) error {
			hc.Set("started", true)
			return nil
		}},
		{Stage: StageAfter, Order: 0, Fn: func(ctx context.Context, hc *Context) error {
			v, ok := hc.Get("started")
			assert.True(t, ok)
			assert.Equal(t, true, v)
			return nil
		}},
	})

	hc := NewContext()
	_, err := p.Run(context.Background(), hc, okAction(0))
	require.NoError(t, err)

	v, ok := hc.Get("started")
	require.True(t, ok)
	assert.Equal(t, true, v)
}

func TestPipeline_ContextCancellationObserved(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran bool
	p := NewPipeline([]Descriptor{
		{Stage: StageBefore, Order: 0, Fn: func(ctx context.Context, hc *Context) error {
			ran = true
			return nil
		}},
	})

	outcome, err := p.Run(ctx, NewContext(), okAction(0))
	require.Error(t, err)
	assert.Equal(t, Cancelled, outcome.State)
	assert.False(t, ran)
}

func TestPipeline_BeforeHookErrorAborts(t *testing.T) {
	boom := errors.New("setup failed")
	var actionRan bool

	p := NewPipeline([]Descriptor{
		{Stage: StageBefore, Order: 0, Fn: func(ctx context.Context, hc *Context) error {
			return boom
		}},
	})

	outcome, err := p.Run(context.Background(), NewContext(), func(context.Context) (int, error) {
		actionRan = true
		return 0, nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, BeforeRunning, outcome.State)
	assert.False(t, actionRan)
}
