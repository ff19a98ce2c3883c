//
// response.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"bufio"
	"fmt"
)

// ResponseWriter is the mutable response builder a Context exclusively
// borrows for the lifetime of one handler call. SendHeaders and SendBody
// are both idempotent: calling either a second time is a no-op.
type ResponseWriter struct {
	Status StatusCode
	header *Headers

	w *bufio.Writer

	headersSent bool
	bodySent    bool
}

func newResponseWriter(w *bufio.Writer) *ResponseWriter {
	return &ResponseWriter{
		Status: StatusOK,
		header: NewHeaders(),
		w:      w,
	}
}

func (r *ResponseWriter) Header() *Headers {
	return r.header
}

func (r *ResponseWriter) SetStatus(s StatusCode) {
	r.Status = s
}

// HeadersSent reports whether the status line and headers are already on
// the wire, so a caller can decide whether writing a fallback error body is
// still meaningful.
func (r *ResponseWriter) HeadersSent() bool {
	return r.headersSent
}

// SendHeaders writes the status line and every header line. Safe to call
// more than once; only the first call has any effect.
func (r *ResponseWriter) SendHeaders() error {
	if r.headersSent {
		return nil
	}
	if _, err := fmt.Fprintf(r.w, "%s %s %s\r\n", HTTPProtocol, r.Status.String(), r.Status.ReasonPhrase()); err != nil {
		return err
	}
	var writeErr error
	r.header.Each(func(key, value string) {
		if writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintf(r.w, "%s: %s\r\n", key, value)
	})
	if writeErr != nil {
		return writeErr
	}
	r.headersSent = true
	return nil
}

// SendBody writes Content-Length, the blank line, then body. Safe to call
// more than once; only the first call has any effect.
func (r *ResponseWriter) SendBody(body []byte) error {
	if r.bodySent {
		return nil
	}
	r.header.Set("Content-Length", fmt.Sprint(len(body)))
	if err := r.SendHeaders(); err != nil {
		return err
	}
	if _, err := r.w.WriteString("\r\n"); err != nil {
		return err
	}
	if _, err := r.w.Write(body); err != nil {
		return err
	}
	r.bodySent = true
	return r.w.Flush()
}
