// Package query turns task list parameters into a typed filter and applies
// it as a gorm scope.
package query

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"taskboard-backend/internal/domain"
	"taskboard-backend/pkg/apperror"

	"gorm.io/gorm"
)

type DueBucket string

const (
	DueToday   DueBucket = "today"
	DueWeek    DueBucket = "week"
	DueMonth   DueBucket = "month"
	DueOverdue DueBucket = "overdue"
)

// SortOrder puts incomplete tasks first, then HIGH > MEDIUM > LOW, then the
// earliest due date with undated tasks last, then the newest.
const SortOrder = "tasks.completed ASC, " +
	"CASE tasks.priority WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END DESC, " +
	"CASE WHEN tasks.due_date IS NULL THEN 1 ELSE 0 END, " +
	"tasks.due_date ASC, " +
	"tasks.created_at DESC"

// Filter has one optional field per supported dimension. Nil means "any".
type Filter struct {
	ProjectID    *string
	ParentTaskID *string
	Completed    *bool
	IsArchived   *bool
	IsRecurring  *bool
	Priority     *domain.Priority
	DueDate      *DueBucket
	LabelIDs     []string
	Search       *string
}

var parsers = map[string]func(f *Filter, raw []string) error{
	"projectId": func(f *Filter, raw []string) error {
		f.ProjectID = &raw[0]
		return nil
	},
	"parentTaskId": func(f *Filter, raw []string) error {
		f.ParentTaskID = &raw[0]
		return nil
	},
	"completed": func(f *Filter, raw []string) error {
		return parseBool("completed", raw[0], &f.Completed)
	},
	"isArchived": func(f *Filter, raw []string) error {
		return parseBool("isArchived", raw[0], &f.IsArchived)
	},
	"isRecurring": func(f *Filter, raw []string) error {
		return parseBool("isRecurring", raw[0], &f.IsRecurring)
	},
	"priority": func(f *Filter, raw []string) error {
		p := domain.Priority(strings.ToUpper(raw[0]))
		switch p {
		case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
			f.Priority = &p
			return nil
		}
		return apperror.Validation("priority must be one of [LOW MEDIUM HIGH]")
	},
	"dueDate": func(f *Filter, raw []string) error {
		b := DueBucket(raw[0])
		switch b {
		case DueToday, DueWeek, DueMonth, DueOverdue:
			f.DueDate = &b
			return nil
		}
		return apperror.Validation("dueDate must be one of [today week month overdue]")
	},
	"labelIds": func(f *Filter, raw []string) error {
		for _, v := range raw {
			for _, id := range strings.Split(v, ",") {
				if id = strings.TrimSpace(id); id != "" {
					f.LabelIDs = append(f.LabelIDs, id)
				}
			}
		}
		return nil
	},
	"search": func(f *Filter, raw []string) error {
		s := strings.TrimSpace(raw[0])
		if s != "" {
			f.Search = &s
		}
		return nil
	},
}

// Parse rejects unknown parameters. Empty values count as absent.
func Parse(values url.Values) (Filter, error) {
	var f Filter
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parse, ok := parsers[key]
		if !ok {
			return Filter{}, apperror.Validation(fmt.Sprintf("Unknown query parameter: %s", key))
		}
		raw := nonEmpty(values[key])
		if len(raw) == 0 {
			continue
		}
		if err := parse(&f, raw); err != nil {
			return Filter{}, err
		}
	}
	return f, nil
}

func nonEmpty(in []string) []string {
	out := in[:0:0]
	for _, v := range in {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseBool(name, raw string, dst **bool) error {
	switch raw {
	case "true":
		v := true
		*dst = &v
	case "false":
		v := false
		*dst = &v
	default:
		return apperror.Validation(name + " must be true or false")
	}
	return nil
}

// StartOfDay is midnight of now's calendar day in now's location.
func StartOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// Window returns the half-open [start, end) range of a bucket. Overdue has
// a zero start and ends at the start of today.
func Window(bucket DueBucket, now time.Time) (start, end time.Time) {
	sod := StartOfDay(now)
	switch bucket {
	case DueToday:
		return sod, sod.AddDate(0, 0, 1)
	case DueWeek:
		return sod, sod.AddDate(0, 0, 7)
	case DueMonth:
		return sod, sod.AddDate(0, 1, 0)
	default:
		return time.Time{}, sod
	}
}

// Scope applies every set field except Search, which is matched in memory.
// now must carry the server's location.
func Scope(f Filter, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.ProjectID != nil {
			db = db.Where("tasks.project_id = ?", *f.ProjectID)
		}
		if f.ParentTaskID != nil {
			db = db.Where("tasks.parent_task_id = ?", *f.ParentTaskID)
		}
		if f.IsArchived != nil {
			db = db.Where("tasks.is_archived = ?", *f.IsArchived)
		}
		if f.IsRecurring != nil {
			db = db.Where("tasks.is_recurring = ?", *f.IsRecurring)
		}
		if f.Priority != nil {
			db = db.Where("tasks.priority = ?", string(*f.Priority))
		}

		completed := f.Completed
		if f.DueDate != nil {
			start, end := Window(*f.DueDate, now)
			if *f.DueDate == DueOverdue {
				db = db.Where("tasks.due_date < ?", end.UTC())
				notCompleted := false
				completed = &notCompleted
			} else {
				db = db.Where("tasks.due_date >= ? AND tasks.due_date < ?", start.UTC(), end.UTC())
			}
		}
		if completed != nil {
			db = db.Where("tasks.completed = ?", *completed)
		}

		if len(f.LabelIDs) > 0 {
			db = db.Where("tasks.id IN (SELECT task_id FROM task_labels WHERE label_id IN ?)", f.LabelIDs)
		}
		return db
	}
}
