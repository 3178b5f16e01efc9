package domain

import "testing"

func TestTaskUpdateAction(t *testing.T) {
	tests := []struct {
		name          string
		before, after Task
		want          ActivityAction
	}{
		{"complete", Task{}, Task{Completed: true}, ActionTaskCompleted},
		{"uncomplete", Task{Completed: true}, Task{}, ActionTaskUncompleted},
		{"archive", Task{}, Task{IsArchived: true}, ActionTaskArchived},
		{"unarchive", Task{IsArchived: true}, Task{}, ActionTaskUnarchived},
		{"completion wins over archive", Task{}, Task{Completed: true, IsArchived: true}, ActionTaskCompleted},
		{"title only", Task{Title: "a"}, Task{Title: "b"}, ActionTaskUpdated},
		{"still complete", Task{Completed: true}, Task{Completed: true, Title: "b"}, ActionTaskUpdated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaskUpdateAction(&tt.before, &tt.after); got != tt.want {
				t.Errorf("TaskUpdateAction() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestProjectUpdateAction(t *testing.T) {
	if got := ProjectUpdateAction(&Project{}, &Project{IsArchived: true}); got != ActionProjectArchived {
		t.Errorf("got %s", got)
	}
	if got := ProjectUpdateAction(&Project{IsArchived: true}, &Project{}); got != ActionProjectUnarchived {
		t.Errorf("got %s", got)
	}
	if got := ProjectUpdateAction(&Project{Name: "a"}, &Project{Name: "b", IsFavorite: true}); got != ActionProjectUpdated {
		t.Errorf("got %s", got)
	}
}
