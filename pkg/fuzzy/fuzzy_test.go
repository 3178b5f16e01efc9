package fuzzy

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"groceries", "groceries", 0},
		{"café", "cafe", 1},
	}
	for _, tt := range tests {
		if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMatchTask(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		title, desc string
		want        bool
	}{
		{"substring in title", "groc", "Buy groceries", "", true},
		{"typo in title", "grocerys", "Buy groceries", "", true},
		{"description only", "invoice", "Finance", "Send the invoice to Bob", true},
		{"accent insensitive", "resume", "Update résumé", "", true},
		{"case insensitive", "REPORT", "quarterly report", "", true},
		{"short query must be exact", "cat", "Walk the dog", "", false},
		{"no match", "dentist", "Buy groceries", "milk and eggs", false},
		{"empty query", "", "anything", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchTask(tt.query, tt.title, tt.desc); got != tt.want {
				t.Errorf("MatchTask(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestTaskScoreRanksTitleAboveDescription(t *testing.T) {
	inTitle := TaskScore("report", "Write report", "")
	inDesc := TaskScore("report", "Write", "the report")
	if inTitle <= inDesc {
		t.Errorf("title score %v should exceed description score %v", inTitle, inDesc)
	}
}
