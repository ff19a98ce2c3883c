//
// dispatch_test.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

func newTestResponse() (*ResponseWriter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	w := bufio.NewWriter(buf)
	return newResponseWriter(w), buf
}

// (f) a Before handler returning End skips every remaining Before and the
// Main handler, but every After handler still runs in ascending order.
func TestDispatch_BeforeEndSkipsMainRunsAfter(t *testing.T) {
	var ran []string

	app := NewApp()
	app.Get("/x", Before(func(ctx *Context) (Flow, error) {
		ran = append(ran, "before-1")
		return End, nil
	}))
	app.Get("/x", Before(func(ctx *Context) (Flow, error) {
		ran = append(ran, "before-2")
		return Next, nil
	}))
	app.Get("/x", Main(func(ctx *Context) (Flow, error) {
		ran = append(ran, "main")
		return Next, nil
	}))
	app.Get("/x", After(func(ctx *Context) (Flow, error) {
		ran = append(ran, "after-1")
		return Next, nil
	}))
	app.Get("/x", After(func(ctx *Context) (Flow, error) {
		ran = append(ran, "after-2")
		return Next, nil
	}))

	resp, _ := newTestResponse()
	req := &Request{Location: Location{Method: Get, Path: "/x"}, Headers: NewHeaders()}
	if err := dispatch(app, req, resp, "req-1"); err != nil {
		t.Fatalf("unexpected dispatch error: %v", err)
	}

	want := []string{"before-1", "after-1", "after-2"}
	if len(ran) != len(want) {
		t.Fatalf("ran = %v, want %v", ran, want)
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Fatalf("ran = %v, want %v", ran, want)
		}
	}
}

// Main always terminates the pre partition, regardless of its own Flow.
func TestDispatch_MainAlwaysEndsPre(t *testing.T) {
	var ran []string

	app := NewApp()
	app.Get("/x", Main(func(ctx *Context) (Flow, error) {
		ran = append(ran, "main")
		return Next, nil
	}))
	app.Get("/x", Main(func(ctx *Context) (Flow, error) {
		ran = append(ran, "second-main")
		return Next, nil
	}))

	resp, _ := newTestResponse()
	req := &Request{Location: Location{Method: Get, Path: "/x"}, Headers: NewHeaders()}
	if err := dispatch(app, req, resp, "req-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ran) != 1 || ran[0] != "main" {
		t.Fatalf("ran = %v, want only [main]", ran)
	}
}

// An error from any handler aborts the whole dispatch, including the post
// partition.
func TestDispatch_ErrorAbortsPost(t *testing.T) {
	afterRan := false

	app := NewApp()
	app.Get("/x", Main(func(ctx *Context) (Flow, error) {
		return Next, errors.New("boom")
	}))
	app.Get("/x", After(func(ctx *Context) (Flow, error) {
		afterRan = true
		return Next, nil
	}))

	resp, _ := newTestResponse()
	req := &Request{Location: Location{Method: Get, Path: "/x"}, Headers: NewHeaders()}
	err := dispatch(app, req, resp, "req-1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if afterRan {
		t.Fatal("After handler ran despite an earlier dispatch error")
	}
}

// A value a handler stashes on Context.Pipe is visible to the next handler
// in the same dispatch.
func TestDispatch_PipeValueCarriesForward(t *testing.T) {
	var seen any

	app := NewApp()
	app.Get("/x", Before(func(ctx *Context) (Flow, error) {
		ctx.Pipe = "from-before"
		return Next, nil
	}))
	app.Get("/x", Main(func(ctx *Context) (Flow, error) {
		seen = ctx.Pipe
		return Next, nil
	}))

	resp, _ := newTestResponse()
	req := &Request{Location: Location{Method: Get, Path: "/x"}, Headers: NewHeaders()}
	if err := dispatch(app, req, resp, "req-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "from-before" {
		t.Fatalf("ctx.Pipe seen by Main = %v, want %q", seen, "from-before")
	}
}

// The request id threaded into dispatch is stable across every handler
// invoked during it.
func TestDispatch_RequestIDStableAcrossHandlers(t *testing.T) {
	var ids []string

	app := NewApp()
	app.Get("/x", Before(func(ctx *Context) (Flow, error) {
		ids = append(ids, ctx.RequestID)
		return Next, nil
	}))
	app.Get("/x", Main(func(ctx *Context) (Flow, error) {
		ids = append(ids, ctx.RequestID)
		return Next, nil
	}))
	app.Get("/x", After(func(ctx *Context) (Flow, error) {
		ids = append(ids, ctx.RequestID)
		return Next, nil
	}))

	resp, _ := newTestResponse()
	req := &Request{Location: Location{Method: Get, Path: "/x"}, Headers: NewHeaders()}
	if err := dispatch(app, req, resp, "req-xyz"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range ids {
		if id != "req-xyz" {
			t.Fatalf("ids = %v, want all req-xyz", ids)
		}
	}
}

// An empty match list is a clean finish: no handler runs, no error.
func TestDispatch_EmptyMatchListIsClean(t *testing.T) {
	app := NewApp()
	resp, _ := newTestResponse()
	req := &Request{Location: Location{Method: Get, Path: "/nowhere"}, Headers: NewHeaders()}
	if err := dispatch(app, req, resp, "req-1"); err != nil {
		t.Fatalf("unexpected error on empty match list: %v", err)
	}
}
