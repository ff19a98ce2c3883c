//
// pool.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"context"
	"net"

	"golang.org/x/sync/errgroup"
)

// RunPool serves like Run, but a single accept goroutine hands each
// connection to a bounded worker group instead of handling the accept-
// parse-dispatch-close cycle inline. The connections themselves are still
// closed before the next one on the same worker is served — a worker never
// holds two connections open at once — so concurrency only changes how many
// connections are in flight across the whole listener, never the per-
// connection serialization guarantee.
func (app *Application) RunPool(workers int) error {
	l, err := app.netListener()
	if err != nil {
		return err
	}
	defer l.Close()

	app.logStart()

	conns := make(chan net.Conn)
	g, ctx := errgroup.WithContext(context.Background())

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case conn, ok := <-conns:
					if !ok {
						return nil
					}
					app.serveConn(conn)
				}
			}
		})
	}

	g.Go(func() error {
		defer close(conns)
		for {
			conn, err := l.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return nil
				default:
					return err
				}
			}
			select {
			case conns <- conn:
			case <-ctx.Done():
				conn.Close()
				return nil
			}
		}
	})

	return g.Wait()
}
