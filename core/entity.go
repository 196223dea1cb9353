package core

import (
	"strconv"
	"sync/atomic"
)

// Entity is an opaque encounter entity identity, never reused within a process
type Entity uint64

// NoEntity is the zero identity, never allocated
const NoEntity Entity = 0

func (e Entity) String() string {
	return "e" + strconv.FormatUint(uint64(e), 10)
}

// EntityAllocator hands out monotonically increasing identities
type EntityAllocator struct {
	next atomic.Uint64
}

// Next returns a fresh identity
func (a *EntityAllocator) Next() Entity {
	return Entity(a.next.Add(1))
}
