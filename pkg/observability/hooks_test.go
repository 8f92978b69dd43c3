package observability

import (
	"context"
	"testing"
	"time"
)

type recordingSessionHooks struct {
	mutations   int
	validations int
	historyOps  int
}

func (r *recordingSessionHooks) OnMutation(context.Context, string, string, error) { r.mutations++ }
func (r *recordingSessionHooks) OnValidation(context.Context, int, error)          { r.validations++ }
func (r *recordingSessionHooks) OnHistory(context.Context, string, int, int)       { r.historyOps++ }

type recordingLayoutHooks struct {
	starts    int
	completes int
}

func (r *recordingLayoutHooks) OnRebuildStart(context.Context) { r.starts++ }
func (r *recordingLayoutHooks) OnRebuildComplete(context.Context, int, int, time.Duration) {
	r.completes++
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	ctx := context.Background()
	// Must not panic.
	Session().OnMutation(ctx, "update", "a.b", nil)
	Session().OnValidation(ctx, 10, nil)
	Session().OnHistory(ctx, "push", 1, 0)
	Layout().OnRebuildStart(ctx)
	Layout().OnRebuildComplete(ctx, 3, 2, time.Millisecond)
}

func TestSetAndResetHooks(t *testing.T) {
	defer Reset()

	sh := &recordingSessionHooks{}
	lh := &recordingLayoutHooks{}
	SetSessionHooks(sh)
	SetLayoutHooks(lh)

	ctx := context.Background()
	Session().OnMutation(ctx, "delete", "items.0", nil)
	Session().OnHistory(ctx, "undo", 0, 1)
	Layout().OnRebuildStart(ctx)
	Layout().OnRebuildComplete(ctx, 1, 0, 0)

	if sh.mutations != 1 || sh.historyOps != 1 {
		t.Errorf("session hooks not invoked: %+v", sh)
	}
	if lh.starts != 1 || lh.completes != 1 {
		t.Errorf("layout hooks not invoked: %+v", lh)
	}

	Reset()
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Reset did not restore noop session hooks")
	}
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset did not restore noop layout hooks")
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	defer Reset()

	sh := &recordingSessionHooks{}
	SetSessionHooks(sh)
	SetSessionHooks(nil)

	if Session() != sh {
		t.Error("nil registration replaced the active hooks")
	}
}
