// Package idx generates the ULID-based identifiers used to correlate requests
// across log lines.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a request correlation identifier in canonical ULID form.
type ID string

// Zero represents the zero value ID.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

// Monotonic entropy is not safe for concurrent use.
var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// NewRequestID returns a new lexicographically sortable request ID for the current time.
func NewRequestID() ID {
	return NewAt(time.Now().UTC())
}

// NewAt generates an ID at the provided time. IDs generated within the same
// millisecond still sort in generation order.
func NewAt(t time.Time) ID {
	mu.Lock()
	defer mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

// Parse validates an inbound request ID such as an X-Request-ID header value.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return Zero, ErrInvalid
	}
	return ID(u.String()), nil
}

// FromHeader returns the inbound ID when it is a valid ULID, otherwise a fresh one.
func FromHeader(v string) ID {
	if id, err := Parse(v); err == nil {
		return id
	}
	return NewRequestID()
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == Zero }

func (id ID) String() string { return string(id) }

// Time extracts the embedded timestamp, or the zero time for invalid IDs.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
