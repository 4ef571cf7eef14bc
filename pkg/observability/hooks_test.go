package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	NoopEditHooks{}.OnEdit(ctx, "split", "p1", 1, 2, time.Millisecond, nil)
	NoopSnapHooks{}.OnSnap(ctx, "p1", "endpoint", 10, time.Millisecond)
	NoopStoreHooks{}.OnStoreOp(ctx, "file", "get", time.Millisecond, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/api/projects")
	h.OnResponse(ctx, "GET", "/api/projects", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Edit() should return NoopEditHooks by default")
	}
	if _, ok := Snap().(NoopSnapHooks); !ok {
		t.Error("Snap() should return NoopSnapHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customEdit := &testEditHooks{}
	SetEditHooks(customEdit)
	if Edit() != customEdit {
		t.Error("SetEditHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Reset() should restore NoopEditHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testEditHooks{}
	SetEditHooks(custom)
	SetEditHooks(nil)

	if Edit() != custom {
		t.Error("SetEditHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	NewLogHooks(logger).Register()

	ctx := context.Background()
	Edit().OnEdit(ctx, "trim", "p1", 1, 0, time.Millisecond, nil)
	Edit().OnEdit(ctx, "split", "p1", 0, 0, 0, errors.New("layer locked"))
	Snap().OnSnap(ctx, "p1", "", 3, time.Millisecond)
	Store().OnStoreOp(ctx, "sqlite", "update", time.Millisecond, nil)
	HTTP().OnResponse(ctx, "PUT", "/api/projects/p1", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"op=trim", "edit refused", "kind=none", "backend=sqlite", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

// Test implementations
type testEditHooks struct{ NoopEditHooks }
type testStoreHooks struct{ NoopStoreHooks }
