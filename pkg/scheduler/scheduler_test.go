package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"

	"smart-task-manager/pkg/scheduler"
)

func TestScheduleOnceFires(t *testing.T) {
	s := scheduler.New(time.UTC)
	defer s.Stop()

	done := make(chan struct{})
	s.ScheduleOnce(time.Now().Add(10*time.Millisecond), func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("one-shot job never fired")
	}
}

func TestScheduleOncePastTimeFiresImmediately(t *testing.T) {
	s := scheduler.New(time.UTC)
	defer s.Stop()

	done := make(chan struct{})
	s.ScheduleOnce(time.Now().Add(-time.Hour), func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("past-due job never fired")
	}
}

func TestStopDropsPendingTimers(t *testing.T) {
	s := scheduler.New(time.UTC)

	var fired atomic.Int32
	s.ScheduleOnce(time.Now().Add(time.Hour), func() {
		fired.Add(1)
	})
	s.Stop()

	time.Sleep(50 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("timer fired after Stop")
	}
}

func TestScheduleDailyValidation(t *testing.T) {
	s := scheduler.New(time.UTC)
	defer s.Stop()

	if _, err := s.ScheduleDaily("08:30", func() {}); err != nil {
		t.Errorf("valid time rejected: %v", err)
	}
	for _, bad := range []string{"8", "25:00", "08:61", "ab:cd"} {
		if _, err := s.ScheduleDaily(bad, func() {}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
