// Package envelope defines the {code, message, data} wrapper the records
// service puts around every response. The gateway speaks the same shape to the
// dashboard, so envelopes can be cached and replayed verbatim.
package envelope

// Envelope wraps a payload the way the records service does. Errors use the
// same shape with a nil Data; they are told apart by HTTP status, not by the
// envelope itself.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta carries pagination info on list responses. The upstream never sends it;
// the gateway adds it when a page is requested.
type Meta struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
	Limit       int `json:"limit"`
}

// New builds a success envelope.
func New[T any](code int, message string, data T) *Envelope[T] {
	return &Envelope[T]{Code: code, Message: message, Data: data}
}
