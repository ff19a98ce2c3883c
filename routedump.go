//
// routedump.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// RouteEntry describes one registered handler in diagnostic form.
type RouteEntry struct {
	Method string `yaml:"method"`
	Hook   string `yaml:"hook"`
	Order  uint64 `yaml:"order"`
}

// RouteDump is a snapshot of every registered route, grouped by its
// reconstructed path, for printing at startup or serving from a debug
// endpoint. It never drives routing itself.
type RouteDump struct {
	Routes map[string][]RouteEntry `yaml:"routes"`
}

func hookName(h Hook) string {
	switch h {
	case HookBefore:
		return "before"
	case HookMain:
		return "main"
	case HookAfter:
		return "after"
	default:
		return "unknown"
	}
}

// String renders the dump as YAML, the same serialization Config uses for
// its own file format.
func (d *RouteDump) String() string {
	out, err := yaml.Marshal(d)
	if err != nil {
		return ""
	}
	return string(out)
}

func dumpTrie(t *Trie) *RouteDump {
	d := &RouteDump{Routes: map[string][]RouteEntry{}}

	addAll := func(path string, handlers []*Handler) {
		for _, h := range handlers {
			d.Routes[path] = append(d.Routes[path], RouteEntry{
				Method: string(h.Method),
				Hook:   hookName(h.Hook),
				Order:  h.Order,
			})
		}
	}

	addAll("*", t.catchAll)

	var walk func(n *node)
	walk = func(n *node) {
		if len(n.handlers) > 0 {
			p := n.path()
			if p == "" {
				p = "/"
			}
			addAll(p, n.handlers)
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(t.root)

	for path := range d.Routes {
		entries := d.Routes[path]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Order < entries[j].Order
		})
		d.Routes[path] = entries
	}

	return d
}
