package domain

import "time"

type ActivityAction string

const (
	ActionTaskCreated       ActivityAction = "TASK_CREATED"
	ActionTaskUpdated       ActivityAction = "TASK_UPDATED"
	ActionTaskCompleted     ActivityAction = "TASK_COMPLETED"
	ActionTaskUncompleted   ActivityAction = "TASK_UNCOMPLETED"
	ActionTaskDeleted       ActivityAction = "TASK_DELETED"
	ActionTaskArchived      ActivityAction = "TASK_ARCHIVED"
	ActionTaskUnarchived    ActivityAction = "TASK_UNARCHIVED"
	ActionProjectCreated    ActivityAction = "PROJECT_CREATED"
	ActionProjectUpdated    ActivityAction = "PROJECT_UPDATED"
	ActionProjectDeleted    ActivityAction = "PROJECT_DELETED"
	ActionProjectArchived   ActivityAction = "PROJECT_ARCHIVED"
	ActionProjectUnarchived ActivityAction = "PROJECT_UNARCHIVED"
	ActionCommentAdded      ActivityAction = "COMMENT_ADDED"
	ActionAttachmentAdded   ActivityAction = "ATTACHMENT_ADDED"
	ActionLabelAdded        ActivityAction = "LABEL_ADDED"
	ActionLabelRemoved      ActivityAction = "LABEL_REMOVED"
)

// Activity is an append-only feed entry. TaskID and ProjectID are plain
// references and may outlive the rows they name.
type Activity struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	Action    ActivityAction `json:"action" gorm:"not null"`
	Details   *string        `json:"details"`
	TaskID    *string        `json:"taskId" gorm:"index"`
	ProjectID *string        `json:"projectId" gorm:"index"`
	UserID    string         `json:"userId" gorm:"index;not null"`
	CreatedAt time.Time      `json:"createdAt" gorm:"index"`
	Task      *Task          `json:"task" gorm:"foreignKey:TaskID"`
	User      *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TransitionAction picks the single action recorded for an update. A
// completion change wins over an archive change, which wins over a plain update.
func TransitionAction(wasCompleted, isCompleted, wasArchived, isArchived bool, completed, uncompleted, archived, unarchived, updated ActivityAction) ActivityAction {
	switch {
	case wasCompleted != isCompleted && isCompleted:
		return completed
	case wasCompleted != isCompleted:
		return uncompleted
	case wasArchived != isArchived && isArchived:
		return archived
	case wasArchived != isArchived:
		return unarchived
	default:
		return updated
	}
}

func TaskUpdateAction(before, after *Task) ActivityAction {
	return TransitionAction(before.Completed, after.Completed, before.IsArchived, after.IsArchived,
		ActionTaskCompleted, ActionTaskUncompleted, ActionTaskArchived, ActionTaskUnarchived, ActionTaskUpdated)
}

// Projects have no completion flag.
func ProjectUpdateAction(before, after *Project) ActivityAction {
	return TransitionAction(false, false, before.IsArchived, after.IsArchived,
		"", "", ActionProjectArchived, ActionProjectUnarchived, ActionProjectUpdated)
}

// Models lists every table for AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&User{}, &FCMToken{}, &Project{}, &Task{}, &Label{}, &TaskLabel{},
		&Comment{}, &Reminder{}, &Attachment{}, &Activity{},
	}
}
