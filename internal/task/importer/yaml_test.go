package importer

import (
	"strings"
	"testing"
	"time"

	"taskboard-backend/internal/domain"
)

const sample = `
tasks:
  - title: Plan trip
    description: Summer holiday
    due_date: 2026-07-01
    priority: high
    labels: [travel, family, travel]
    children:
      - title: Book flights
        due_date: 2026-06-01T09:00:00+02:00
        labels: [travel, urgent]
      - title: Renew passport
  - title: Water plants
`

func TestParse(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	nodes, err := Parse([]byte(sample), loc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d roots, want 2", len(nodes))
	}

	trip := nodes[0]
	if trip.Priority != domain.PriorityHigh {
		t.Errorf("priority = %s", trip.Priority)
	}
	if want := time.Date(2026, 6, 30, 22, 0, 0, 0, time.UTC); trip.DueDate == nil || !trip.DueDate.Equal(want) {
		t.Errorf("due = %v, want %v", trip.DueDate, want)
	}
	if len(trip.Labels) != 2 {
		t.Errorf("labels = %v, duplicates should collapse", trip.Labels)
	}
	if len(trip.Children) != 2 || trip.Children[0].Title != "Book flights" {
		t.Fatalf("children = %+v", trip.Children)
	}
	if due := trip.Children[0].DueDate; due == nil || due.Location() != time.UTC || due.Hour() != 7 {
		t.Errorf("child due = %v", due)
	}
	if nodes[1].Priority != domain.PriorityMedium {
		t.Errorf("default priority = %s", nodes[1].Priority)
	}

	names := LabelNames(nodes)
	if strings.Join(names, ",") != "travel,family,urgent" {
		t.Errorf("LabelNames() = %v", names)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"not yaml", "tasks: [", "YAML parse error"},
		{"empty", "tasks: []", "no tasks found"},
		{"missing title", "tasks:\n  - description: x", "title is required"},
		{"bad priority", "tasks:\n  - title: a\n    priority: urgent", "priority must be one of"},
		{"bad date", "tasks:\n  - title: a\n    due_date: soon", "invalid due_date"},
		{"nested missing title", "tasks:\n  - title: a\n    children:\n      - title: ''", "title is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), time.UTC)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("tasks:\n")
	for i := 0; i <= MaxTasks; i++ {
		b.WriteString("  - title: t\n")
	}
	if _, err := Parse([]byte(b.String()), time.UTC); err == nil {
		t.Fatal("expected limit error")
	}
}
