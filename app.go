//
// app.go
// Distributed under terms of the MIT license.
//

package ember

// App is the public registration facade: Get/Post/All register a Handle
// against a path pattern. Registration is single-phase — it must happen
// before Application.Run/RunPool is called; the trie is read-only once
// serving starts.
type App struct {
	trie *Trie
}

func NewApp() *App {
	return &App{trie: newTrie()}
}

func (a *App) Get(path string, h Handle) *App  { return a.register(Get, path, h) }
func (a *App) Post(path string, h Handle) *App { return a.register(Post, path, h) }
func (a *App) All(path string, h Handle) *App  { return a.register(All, path, h) }

// register expands a Middleware handle into one Before and one After
// registration sharing the same function; any other Handle registers once
// under its own hook.
func (a *App) register(method Method, path string, h Handle) *App {
	if h.middleware {
		a.trie.register(&Handler{Method: method, Path: path, Hook: HookBefore, Func: h.fn})
		a.trie.register(&Handler{Method: method, Path: path, Hook: HookAfter, Func: h.fn})
		return a
	}
	a.trie.register(&Handler{Method: method, Path: path, Hook: h.hook, Func: h.fn})
	return a
}

func (a *App) match(method Method, path string) []Match {
	return a.trie.handlers(method, path)
}

// Dump returns a diagnostic snapshot of every registered route, grouped by
// its reconstructed path (see RouteDump).
func (a *App) Dump() *RouteDump {
	return dumpTrie(a.trie)
}
