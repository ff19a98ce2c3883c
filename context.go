//
// context.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"encoding/json"
	"fmt"
)

// Context is shared by every handler invoked during one dispatch. The
// Response is exclusively borrowed by the context for the duration of each
// handler call — handlers must not retain Request or Response beyond their
// own invocation.
type Context struct {
	Request  *Request
	Response *ResponseWriter
	Params   map[string]string
	Handler  *Handler

	// RequestID is the id serveConn mints once per connection (see
	// requestid.go) and passes to dispatch; it never changes for the
	// lifetime of a dispatch.
	RequestID string

	// Pipe is a handler-to-next-handler scratch value for this dispatch
	// only; the router never reads or writes it.
	Pipe any
}

func (c *Context) Param(key string) string {
	return c.Params[key]
}

// JSON writes data as the response body with Content-Type application/json.
func (c *Context) JSON(status StatusCode, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return err
	}
	c.Response.SetStatus(status)
	c.Response.Header().Set("Content-Type", "application/json")
	return c.Response.SendBody(body)
}

// String writes a formatted plain-text response body.
func (c *Context) String(status StatusCode, format string, args ...any) error {
	c.Response.SetStatus(status)
	c.Response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	return c.Response.SendBody([]byte(fmt.Sprintf(format, args...)))
}
