//
// dispatch.go
// Distributed under terms of the MIT license.
//

package ember

// dispatch builds a fresh Context bound to resp, computes the match list,
// partitions it into pre (Before ∪ Main) and post (After), and runs each
// partition per the state machine in the component design:
//
//   - Before: on Next, continue; on End, terminate pre without running any
//     further Before/Main handler.
//   - Main: exactly one runs; pre terminates immediately after it regardless
//     of its return value.
//   - After: a flat loop; End stops it early, Next continues.
//   - Any handler error aborts the whole dispatch — remaining handlers in
//     either partition, including post, never run.
//
// dispatch returns the error that aborted it, or nil on a clean finish (an
// empty match list is a clean finish with no handler ever called).
func dispatch(a *App, req *Request, resp *ResponseWriter, requestID string) error {
	matches := a.match(req.Location.Method, req.Location.Path)

	var pre, post []Match
	for _, m := range matches {
		if m.Handler.Hook == HookAfter {
			post = append(post, m)
		} else {
			pre = append(pre, m)
		}
	}

	ctx := &Context{Request: req, Response: resp, RequestID: requestID}

	for _, m := range pre {
		ctx.Params = m.Params
		ctx.Handler = m.Handler
		flow, err := m.Handler.Func(ctx)
		if err != nil {
			return err
		}
		if m.Handler.Hook == HookMain {
			break
		}
		if flow == End {
			break
		}
	}

	for _, m := range post {
		ctx.Params = m.Params
		ctx.Handler = m.Handler
		flow, err := m.Handler.Func(ctx)
		if err != nil {
			return err
		}
		if flow == End {
			break
		}
	}

	return nil
}
