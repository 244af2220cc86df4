package model

import "github.com/oklog/ulid/v2"

// NewID returns a new ULID string. ULIDs are collision-resistant under
// rapid creation within the same millisecond and sort lexicographically
// by creation time.
func NewID() string {
	return ulid.Make().String()
}
