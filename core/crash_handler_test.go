package core

import (
	"sync"
	"testing"
)

func TestGoRoutesPanicToHandler(t *testing.T) {
	var (
		wg  sync.WaitGroup
		got any
	)
	wg.Add(1)
	SetCrashHandler(func(r any) {
		got = r
		wg.Done()
	})
	defer SetCrashHandler(nil)

	Go(func() { panic("boom") })
	wg.Wait()

	if got != "boom" {
		t.Errorf("recovered = %v, want boom", got)
	}
}

func TestEntityAllocatorMonotonic(t *testing.T) {
	var a EntityAllocator
	prev := NoEntity
	for i := 0; i < 100; i++ {
		e := a.Next()
		if e <= prev {
			t.Fatalf("Next() = %d after %d, want strictly increasing", e, prev)
		}
		prev = e
	}
	if got := Entity(7).String(); got != "e7" {
		t.Errorf("String() = %q, want e7", got)
	}
}
