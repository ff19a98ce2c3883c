//
// handler.go
// Distributed under terms of the MIT license.
//

package ember

// Hook is the phase a handler runs in. Phases are strictly ordered
// Before < Main < After for the purposes of the dispatch comparator, but the
// dispatcher itself partitions the pre-phase (Before ∪ Main) from the
// post-phase (After) — see dispatch.
type Hook int

const (
	HookBefore Hook = iota
	HookMain
	HookAfter
)

func (h Hook) rank() int {
	switch h {
	case HookBefore:
		return 0
	case HookMain:
		return 1
	default:
		return 2
	}
}

// Flow is a handler's verdict on whether the chain should continue.
type Flow int

const (
	Next Flow = iota
	End
)

// HandlerFunc is the one capability every handler is reduced to: callable
// with a mutable Context, returning Next/End or a failure.
type HandlerFunc func(*Context) (Flow, error)

// Handler is the immutable quadruple (method, path pattern, hook, function)
// stored in the trie. Once registered it is shared by reference with every
// match result that includes it.
type Handler struct {
	Method Method
	Path   string
	Hook   Hook
	Func   HandlerFunc

	// Order is the registration-order stamp assigned by the Trie at
	// register time; it is the secondary sort key within a hook phase.
	Order uint64
}

// Handle is a hook-tagged package of a handler function, built with
// Main/Before/After/Middleware and consumed by App.Get/Post/All. Middleware
// is not itself a Hook — it expands into one Before and one After
// registration sharing the same function.
type Handle struct {
	hook       Hook
	fn         HandlerFunc
	middleware bool
}

func Main(fn HandlerFunc) Handle {
	return Handle{hook: HookMain, fn: fn}
}

func Before(fn HandlerFunc) Handle {
	return Handle{hook: HookBefore, fn: fn}
}

func After(fn HandlerFunc) Handle {
	return Handle{hook: HookAfter, fn: fn}
}

func Middleware(fn HandlerFunc) Handle {
	return Handle{fn: fn, middleware: true}
}
