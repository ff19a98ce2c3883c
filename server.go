//
// server.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"bufio"
	"crypto/tls"
	"net"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"

	"github.com/emberweb/ember/logv"
)

// New builds an Application around app, applying opts over a set of
// defaults (0.0.0.0:8000, no TLS, no connection cap, no persisted access
// log). The returned Application owns nothing about app's registration —
// callers may keep registering routes until the first Run/RunPool call.
func New(app *App, opts ...Option) (*Application, error) {
	c := &Config{Host: "0.0.0.0", Port: 8000}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.IsValid(); err != nil {
		return nil, err
	}

	if c.LoggerPath != "" {
		logv.Configure(c.LoggerPath, c.PrettyLog)
	}
	if c.LoggerLevel != "" {
		level, err := zerolog.ParseLevel(c.LoggerLevel)
		if err != nil {
			return nil, err
		}
		logv.SetLevel(level)
	}

	sink, err := newAccessLogSink(c.AccessLogDriver, c.AccessLogDSN)
	if err != nil {
		return nil, err
	}

	return &Application{app: app, config: c, accessLog: sink}, nil
}

// Application owns the listener and serves one app over it. It carries no
// routing logic of its own: Run/RunPool are purely about accepting
// connections and feeding them through readRequest/dispatch.
type Application struct {
	app       *App
	config    *Config
	listener  net.Listener
	accessLog AccessLogSink
}

// Run accepts connections and serves them one at a time on the calling
// goroutine: accept, parse, dispatch, close, then accept the next one. No
// connection is ever open concurrently with another under this call.
func (app *Application) Run() error {
	l, err := app.netListener()
	if err != nil {
		return err
	}
	defer l.Close()

	app.logStart()

	for {
		conn, err := l.Accept()
		if err != nil {
			return err
		}
		app.serveConn(conn)
	}
}

func (app *Application) netListener() (net.Listener, error) {
	if app.listener != nil {
		return app.listener, nil
	}
	l, err := net.Listen("tcp", app.config.Addr())
	if err != nil {
		return nil, err
	}
	if app.config.TLSConfig != nil && len(app.config.TLSConfig.Certificates) > 0 {
		l = tls.NewListener(l, app.config.TLSConfig)
	}
	if app.config.MaxConnections > 0 {
		l = netutil.LimitListener(l, app.config.MaxConnections)
	}
	app.listener = l
	return app.listener, nil
}

func (app *Application) logStart() {
	host := app.config.Host
	if host == "0.0.0.0" {
		host = "localhost"
	}
	logv.WithNoCaller.Info().Msgf("start on http://%s:%d", host, app.config.Port)
}

// serveConn runs the full accept-parse-dispatch-close cycle for one
// connection. A wire parse failure is logged and the connection closed with
// no response, per the parser's contract; a handler error that aborted
// dispatch still gets a best-effort status line if nothing was sent yet.
func (app *Application) serveConn(conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	r := bufio.NewReader(conn)

	req, err := readRequest(conn, r)
	if err != nil {
		logv.WithNoCaller.Warn().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("request parse failed")
		return
	}

	w := bufio.NewWriter(conn)
	resp := newResponseWriter(w)
	requestID := newRequestID()
	resp.Header().Set("X-Request-Id", requestID)

	dispatchErr := dispatch(app.app, req, resp, requestID)
	if dispatchErr != nil {
		if !resp.HeadersSent() {
			resp.SetStatus(StatusInternalServerError)
			_ = resp.SendBody([]byte(dispatchErr.Error()))
		}
		logv.WithNoCaller.Error().Err(dispatchErr).Str("request_id", requestID).Msg("dispatch failed")
	} else if !resp.HeadersSent() {
		resp.SetStatus(StatusNotFound)
		_ = resp.SendBody([]byte(ErrEndpointNotFound.Error()))
	}

	duration := time.Since(start)

	if app.accessLog != nil {
		app.accessLog.Record(AccessLog{
			RequestID:  requestID,
			Method:     string(req.Location.Method),
			Path:       req.Location.Path,
			Status:     resp.Status.Code(),
			RemoteAddr: req.RemoteAddr,
			DurationUs: duration.Microseconds(),
		})
	}

	if !app.config.DisableReqLog {
		logv.WithNoCaller.Info().
			Str("request_id", requestID).
			Str("method", string(req.Location.Method)).
			Int("status", resp.Status.Code()).
			Int64("us", duration.Microseconds()).
			Msg(req.Location.Path)
	}
}
