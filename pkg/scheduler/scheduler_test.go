package scheduler

import (
	"testing"
	"time"
)

func TestScheduleIntervalRejectsSubSecond(t *testing.T) {
	s := NewService(time.UTC)
	for _, d := range []time.Duration{0, -time.Minute, 500 * time.Millisecond} {
		if _, err := s.ScheduleInterval(d, func() {}); err == nil {
			t.Errorf("ScheduleInterval(%s) should fail", d)
		}
	}
}

func TestScheduleIntervalRuns(t *testing.T) {
	s := NewService(time.UTC)
	ran := make(chan struct{}, 1)
	if _, err := s.ScheduleInterval(time.Second, func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatal(err)
	}
	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}
