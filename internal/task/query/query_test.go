package query

import (
	"net/url"
	"testing"
	"time"

	"taskboard-backend/internal/domain"
	"taskboard-backend/pkg/apperror"
)

func TestParse(t *testing.T) {
	f, err := Parse(url.Values{
		"projectId":   {"p1"},
		"completed":   {"false"},
		"isArchived":  {"true"},
		"isRecurring": {""},
		"priority":    {"high"},
		"dueDate":     {"week"},
		"labelIds":    {"a, b,,c", "d"},
		"search":      {"  report "},
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.ProjectID == nil || *f.ProjectID != "p1" {
		t.Errorf("ProjectID = %v", f.ProjectID)
	}
	if f.Completed == nil || *f.Completed {
		t.Errorf("Completed = %v", f.Completed)
	}
	if f.IsArchived == nil || !*f.IsArchived {
		t.Errorf("IsArchived = %v", f.IsArchived)
	}
	if f.IsRecurring != nil {
		t.Errorf("empty isRecurring should be absent")
	}
	if f.Priority == nil || *f.Priority != domain.PriorityHigh {
		t.Errorf("Priority = %v", f.Priority)
	}
	if f.DueDate == nil || *f.DueDate != DueWeek {
		t.Errorf("DueDate = %v", f.DueDate)
	}
	if got := len(f.LabelIDs); got != 4 {
		t.Errorf("LabelIDs = %v", f.LabelIDs)
	}
	if f.Search == nil || *f.Search != "report" {
		t.Errorf("Search = %v", f.Search)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   string
	}{
		{"unknown", url.Values{"status": {"done"}}, "Unknown query parameter: status"},
		{"first unknown alphabetically", url.Values{"zeta": {"1"}, "alpha": {"1"}}, "Unknown query parameter: alpha"},
		{"bad bool", url.Values{"completed": {"yes"}}, "completed must be true or false"},
		{"bad priority", url.Values{"priority": {"URGENT"}}, "priority must be one of [LOW MEDIUM HIGH]"},
		{"bad bucket", url.Values{"dueDate": {"tomorrow"}}, "dueDate must be one of [today week month overdue]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.values)
			if err == nil {
				t.Fatal("expected error")
			}
			if apperror.KindOf(err) != apperror.KindValidation {
				t.Errorf("kind = %v, want validation", apperror.KindOf(err))
			}
			if got := apperror.PublicMessage(err); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	now := time.Date(2026, 1, 31, 15, 30, 0, 0, loc)
	sod := time.Date(2026, 1, 31, 0, 0, 0, 0, loc)

	tests := []struct {
		bucket     DueBucket
		start, end time.Time
	}{
		{DueToday, sod, time.Date(2026, 2, 1, 0, 0, 0, 0, loc)},
		{DueWeek, sod, time.Date(2026, 2, 7, 0, 0, 0, 0, loc)},
		{DueMonth, sod, time.Date(2026, 3, 3, 0, 0, 0, 0, loc)},
		{DueOverdue, time.Time{}, sod},
	}
	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			start, end := Window(tt.bucket, now)
			if !start.Equal(tt.start) || !end.Equal(tt.end) {
				t.Errorf("Window() = [%v, %v), want [%v, %v)", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestTodayWindowBoundaries(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	start, end := Window(DueToday, now)
	inWindow := func(due time.Time) bool {
		return !due.Before(start) && due.Before(end)
	}

	if !inWindow(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("midnight today should be included")
	}
	if !inWindow(time.Date(2026, 10, 15, 23, 59, 59, 0, time.UTC)) {
		t.Error("23:59:59 today should be included")
	}
	if inWindow(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)) {
		t.Error("00:00:00 tomorrow should be excluded")
	}
}
