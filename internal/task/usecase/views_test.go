package usecase

import (
	"testing"
	"time"

	"taskboard-backend/internal/domain"
)

func at(t time.Time) *time.Time { return &t }

func TestBuildViews(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, loc)
	sod := time.Date(2026, 10, 15, 0, 0, 0, 0, loc)
	project := "p1"

	tasks := []domain.Task{
		{ID: "overdue", DueDate: at(sod.Add(-time.Second))},
		{ID: "today-start", DueDate: at(sod)},
		{ID: "today-end", DueDate: at(sod.Add(24*time.Hour - time.Second))},
		{ID: "tomorrow", DueDate: at(sod.Add(24 * time.Hour))},
		{ID: "next-week", DueDate: at(sod.AddDate(0, 0, 2))},
		{ID: "next-week-end", DueDate: at(sod.AddDate(0, 0, 8).Add(-time.Second))},
		{ID: "later", DueDate: at(sod.AddDate(0, 0, 8))},
		{ID: "inbox"},
		{ID: "in-project", ProjectID: &project},
		{ID: "done-overdue", Completed: true, DueDate: at(sod.AddDate(0, 0, -3))},
		{ID: "done-today", Completed: true, DueDate: at(sod.Add(time.Hour))},
		{ID: "done-inbox", Completed: true},
		{ID: "archived", IsArchived: true, DueDate: at(sod)},
	}

	views := BuildViews(tasks, now)

	check := func(name string, got []domain.Task, want ...string) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("%s: got %d tasks, want %v", name, len(got), want)
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("%s[%d] = %s, want %s", name, i, got[i].ID, id)
			}
		}
	}
	check("overdue", views.Overdue, "overdue")
	check("today", views.Today, "today-start", "today-end")
	check("tomorrow", views.Tomorrow, "tomorrow")
	check("nextWeek", views.NextWeek, "next-week", "next-week-end")
	check("later", views.Later, "later")
	check("inbox", views.Inbox, "inbox")

	want := struct{ total, completed, pending, overdue int }{12, 3, 9, 1}
	s := views.Stats
	if s.Total != want.total || s.Completed != want.completed || s.Pending != want.pending || s.Overdue != want.overdue {
		t.Errorf("stats = %+v, want %+v", s, want)
	}
}

func TestBuildViewsUsesServerDay(t *testing.T) {
	// 23:30 local is already the next day in UTC.
	loc := time.FixedZone("UTC-2", -2*3600)
	now := time.Date(2026, 10, 15, 23, 30, 0, 0, loc)
	due := time.Date(2026, 10, 16, 1, 0, 0, 0, time.UTC)

	views := BuildViews([]domain.Task{{ID: "a", DueDate: &due}}, now)
	if len(views.Today) != 1 {
		t.Errorf("task due 23:00 local should be today, got %+v", views)
	}
}
