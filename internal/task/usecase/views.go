package usecase

import (
	"time"

	"taskboard-backend/internal/domain"
	taskdto "taskboard-backend/internal/task/dto"
	"taskboard-backend/internal/task/query"
)

// BuildViews expects the caller's unarchived tasks and a now in the server
// location. Completed tasks only count towards the stats.
func BuildViews(tasks []domain.Task, now time.Time) *taskdto.ViewsResponse {
	sod := query.StartOfDay(now)
	tomorrow := sod.AddDate(0, 0, 1)
	dayAfter := sod.AddDate(0, 0, 2)
	weekEnd := sod.AddDate(0, 0, 8)

	views := &taskdto.ViewsResponse{
		Overdue:  []domain.Task{},
		Today:    []domain.Task{},
		Tomorrow: []domain.Task{},
		NextWeek: []domain.Task{},
		Later:    []domain.Task{},
		Inbox:    []domain.Task{},
	}

	for _, task := range tasks {
		if task.IsArchived {
			continue
		}
		views.Stats.Total++
		if task.Completed {
			views.Stats.Completed++
			continue
		}

		if task.DueDate == nil {
			if task.ProjectID == nil {
				views.Inbox = append(views.Inbox, task)
			}
			continue
		}

		due := *task.DueDate
		switch {
		case due.Before(sod):
			views.Overdue = append(views.Overdue, task)
		case due.Before(tomorrow):
			views.Today = append(views.Today, task)
		case due.Before(dayAfter):
			views.Tomorrow = append(views.Tomorrow, task)
		case due.Before(weekEnd):
			views.NextWeek = append(views.NextWeek, task)
		default:
			views.Later = append(views.Later, task)
		}
	}

	views.Stats.Pending = views.Stats.Total - views.Stats.Completed
	views.Stats.Overdue = len(views.Overdue)
	return views
}
