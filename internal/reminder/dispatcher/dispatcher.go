package dispatcher

import (
	"context"
	"fmt"
	"log"
	"time"

	authrepo "taskboard-backend/internal/auth/repository"
	"taskboard-backend/internal/domain"
	"taskboard-backend/internal/reminder/repository"
	"taskboard-backend/pkg/fcm"
	"taskboard-backend/pkg/scheduler"
)

// batchSize caps how many reminders one run handles.
const batchSize = 200

// ReminderDispatcher pushes due NOTIFICATION reminders to the owner's devices
type ReminderDispatcher struct {
	reminderRepo repository.ReminderRepository
	fcmRepo      authrepo.FCMTokenRepository
	sender       fcm.Sender
	location     *time.Location
	now          func() time.Time
}

func NewReminderDispatcher(
	reminderRepo repository.ReminderRepository,
	fcmRepo authrepo.FCMTokenRepository,
	sender fcm.Sender,
	location *time.Location,
) *ReminderDispatcher {
	if location == nil {
		location = time.Local
	}
	return &ReminderDispatcher{
		reminderRepo: reminderRepo,
		fcmRepo:      fcmRepo,
		sender:       sender,
		location:     location,
		now:          time.Now,
	}
}

func (d *ReminderDispatcher) SetClock(now func() time.Time) {
	d.now = now
}

// Register adds the dispatcher to the cron service. A nil sender disables it.
func (d *ReminderDispatcher) Register(s *scheduler.Service, interval time.Duration) error {
	if d.sender == nil {
		log.Println("[ReminderScheduler] FCM client not available, scheduler disabled")
		return nil
	}
	if _, err := s.ScheduleInterval(interval, func() {
		d.Dispatch(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	log.Printf("[ReminderScheduler] Reminder dispatcher scheduled (interval: %s)", interval)
	return nil
}

// Dispatch sends every due reminder once and returns how many were marked sent.
func (d *ReminderDispatcher) Dispatch(ctx context.Context) int {
	reminders, err := d.reminderRepo.FindDue(ctx, d.now(), batchSize)
	if err != nil {
		log.Printf("[ReminderScheduler] Error finding due reminders: %v", err)
		return 0
	}
	if len(reminders) == 0 {
		return 0
	}

	log.Printf("[ReminderScheduler] Found %d due reminders", len(reminders))

	sent := 0
	for i := range reminders {
		reminder := &reminders[i]
		if reminder.Task == nil {
			continue
		}
		d.push(ctx, reminder)

		// Marked even when delivery failed so a dead device is not retried every tick.
		ok, err := d.reminderRepo.MarkSent(ctx, reminder.ID)
		if err != nil {
			log.Printf("[ReminderScheduler] Error marking reminder %s as sent: %v", reminder.ID, err)
			continue
		}
		if ok {
			sent++
		}
	}
	return sent
}

func (d *ReminderDispatcher) push(ctx context.Context, reminder *domain.Reminder) {
	task := reminder.Task
	tokens, err := d.fcmRepo.GetTokensByUserID(ctx, task.UserID)
	if err != nil {
		log.Printf("[ReminderScheduler] Error getting FCM tokens for user %s: %v", task.UserID, err)
		return
	}
	if len(tokens) == 0 {
		log.Printf("[ReminderScheduler] No FCM tokens for user %s", task.UserID)
		return
	}

	tokenStrings := make([]string, 0, len(tokens))
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.Token)
	}

	failedTokens, err := d.sender.SendToDevices(ctx, tokenStrings, d.notification(reminder))
	if err != nil {
		log.Printf("[ReminderScheduler] Error sending reminder %s: %v", reminder.ID, err)
		return
	}
	log.Printf("[ReminderScheduler] Sent reminder for task '%s' to %d devices", task.Title, len(tokenStrings)-len(failedTokens))

	for _, token := range failedTokens {
		if err := d.fcmRepo.DeleteToken(ctx, token); err != nil {
			log.Printf("[ReminderScheduler] Error pruning FCM token: %v", err)
		}
	}
}

func (d *ReminderDispatcher) notification(reminder *domain.Reminder) fcm.NotificationData {
	task := reminder.Task

	marker := "🟡"
	switch task.Priority {
	case domain.PriorityHigh:
		marker = "🔴"
	case domain.PriorityLow:
		marker = "🟢"
	}

	body := task.Description
	if body == "" {
		body = "You have a task to finish"
	}
	if task.DueDate != nil {
		body = fmt.Sprintf("%s\nDue: %s", body, task.DueDate.In(d.location).Format("Jan 2, 2006 15:04"))
	}

	return fcm.NotificationData{
		Title: marker + " Reminder: " + task.Title,
		Body:  body,
		Data: map[string]string{
			"type":        "task_reminder",
			"task_id":     task.ID,
			"reminder_id": reminder.ID,
			"priority":    string(task.Priority),
		},
		Link: "/tasks/" + task.ID,
	}
}
