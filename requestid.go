//
// requestid.go
// Distributed under terms of the MIT license.
//

package ember

import "github.com/google/uuid"

// newRequestID mints the per-request identifier threaded through Context
// and the access log. It is assigned once per connection, outside the
// trie-registered handler chain, so it is never subject to dispatch order.
func newRequestID() string {
	return uuid.New().String()
}
