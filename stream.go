//
// stream.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"bufio"
	"net"
	"strings"
)

// maxHeaderBytes bounds the combined size of the request line and every
// header line, CRLFs included.
const maxHeaderBytes = 4096

// readRequest parses one HTTP/1.1 request off conn: a request line, zero or
// more header lines, then a blank line. The remaining bytes on the
// connection are handed to the request, unread, as its body, through the
// same buffered reader r.
func readRequest(conn net.Conn, r *bufio.Reader) (*Request, error) {
	req := newRequest()
	req.RemoteAddr = conn.RemoteAddr().String()
	req.Body = r

	headerBytes := 0
	line := 0

	for {
		raw, err := r.ReadString('\n')
		if err != nil && raw == "" {
			break // EOF before any bytes of this line
		}
		headerBytes += len(raw)
		if headerBytes > maxHeaderBytes {
			return nil, errHeaderTooLong(maxHeaderBytes)
		}
		line++

		trimmed := strings.TrimRight(raw, "\r\n")
		if trimmed == "" {
			break // blank line: headers end, body (if any) follows
		}

		if line == 1 {
			loc, err := parseLocation(trimmed)
			if err != nil {
				return nil, err
			}
			req.Location = loc
			continue
		}

		key, value, err := parseHeaderLine(trimmed)
		if err != nil {
			return nil, err
		}
		req.Headers.Append(key, value)
	}

	if req.Location.Path == "" {
		return nil, errEmptyRequest()
	}
	return req, nil
}

func parseLocation(line string) (Location, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != 3 {
		return Location{}, errInvalidLocationFormat()
	}

	var method Method
	switch strings.ToLower(tokens[0]) {
	case "get":
		method = Get
	case "post":
		method = Post
	default:
		return Location{}, errUnsupportedMethod(tokens[0])
	}

	protocol := strings.ToLower(strings.TrimSpace(tokens[2]))
	if protocol != strings.ToLower(HTTPProtocol) {
		return Location{}, errUnsupportedProtocol(protocol)
	}

	return Location{Method: method, Path: tokens[1]}, nil
}

func parseHeaderLine(line string) (key, value string, err error) {
	idx := strings.IndexByte(line, ':')
	if idx == -1 {
		return "", "", errInvalidHeaderEntryFormat()
	}
	key = strings.ToLower(line[:idx])
	value = strings.ToLower(strings.TrimSpace(line[idx+1:]))
	return key, value, nil
}
