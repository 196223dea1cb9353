package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Now() = %v, want %v", now, startTime)
	}

	newTime := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Now() after SetTime = %v, want %v", now, newTime)
	}

	mock.Advance(30 * time.Minute)
	got := mock.Advance(15 * time.Minute)
	if want := newTime.Add(45 * time.Minute); !got.Equal(want) || !mock.Now().Equal(want) {
		t.Errorf("Advance() = %v, want %v", got, want)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	want := time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC)
	if got := mock.Now(); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	real := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(real)
	start := pc.Now()

	real.Advance(time.Second)
	pc.Pause()
	real.Advance(5 * time.Second)

	if got := pc.Now().Sub(start); got != time.Second {
		t.Errorf("elapsed while paused = %v, want 1s", got)
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("TotalPauseDuration() = %v, want 5s", got)
	}

	if paused := pc.Toggle(); paused {
		t.Error("Toggle() from paused reported paused")
	}
	real.Advance(2 * time.Second)

	if got := pc.Now().Sub(start); got != 3*time.Second {
		t.Errorf("elapsed after resume = %v, want 3s", got)
	}
}
