package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"taskboard-backend/internal/domain"
	"taskboard-backend/pkg/config"
	"taskboard-backend/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

type testServer struct {
	t         *testing.T
	db        *gorm.DB
	router    *gin.Engine
	uploadDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewConnection(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiry:      time.Hour,
		Location:       time.UTC,
		UploadDir:      filepath.Join(t.TempDir(), "uploads"),
		MaxUploadBytes: 1 << 20,
	}
	h, err := NewHandler(db, cfg)
	if err != nil {
		t.Fatal(err)
	}
	h.SetClock(func() time.Time { return fixedNow })
	return &testServer{t: t, db: db, router: h.Router(), uploadDir: cfg.UploadDir}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) expect(rec *httptest.ResponseRecorder, status int, out interface{}) {
	s.t.Helper()
	if rec.Code != status {
		s.t.Fatalf("status = %d, want %d, body %s", rec.Code, status, rec.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			s.t.Fatalf("decode %s: %v", rec.Body.String(), err)
		}
	}
}

func (s *testServer) signUp(email string) string {
	s.t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	s.expect(s.do(http.MethodPost, "/api/auth/signup", "", gin.H{"email": email, "password": "secret123", "name": "Tester"}), http.StatusCreated, &resp)
	if resp.Token == "" {
		s.t.Fatal("signup returned no token")
	}
	return resp.Token
}

func (s *testServer) createTask(token string, body gin.H) domain.Task {
	s.t.Helper()
	var task domain.Task
	s.expect(s.do(http.MethodPost, "/api/tasks", token, body), http.StatusCreated, &task)
	return task
}

func (s *testServer) count(model interface{}) int64 {
	s.t.Helper()
	var n int64
	if err := s.db.Model(model).Count(&n).Error; err != nil {
		s.t.Fatal(err)
	}
	return n
}

func taskIDs(tasks []domain.Task) map[string]bool {
	ids := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		ids[t.ID] = true
	}
	return ids
}

func TestHealthAndAuthGuard(t *testing.T) {
	s := newTestServer(t)

	s.expect(s.do(http.MethodGet, "/api/health", "", nil), http.StatusOK, nil)

	var errBody struct {
		Error string `json:"error"`
	}
	s.expect(s.do(http.MethodGet, "/api/tasks", "", nil), http.StatusUnauthorized, &errBody)
	if errBody.Error != "Unauthorized" {
		t.Errorf("error = %q", errBody.Error)
	}
	s.expect(s.do(http.MethodGet, "/api/tasks", "not-a-jwt", nil), http.StatusUnauthorized, nil)

	token := s.signUp("guard@example.com")
	var me struct {
		Email string `json:"email"`
	}
	s.expect(s.do(http.MethodGet, "/api/auth/me", token, nil), http.StatusOK, &me)
	if me.Email != "guard@example.com" {
		t.Errorf("me.email = %q", me.Email)
	}

	s.expect(s.do(http.MethodPost, "/api/auth/signup", "", gin.H{"email": "guard@example.com", "password": "secret123"}), http.StatusBadRequest, &errBody)
	if errBody.Error != "User already exists" {
		t.Errorf("duplicate signup error = %q", errBody.Error)
	}
}

func TestUnknownQueryParameterRejected(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("query@example.com")

	var errBody struct {
		Error string `json:"error"`
	}
	s.expect(s.do(http.MethodGet, "/api/tasks?colour=red", token, nil), http.StatusBadRequest, &errBody)
	if errBody.Error != "Unknown query parameter: colour" {
		t.Errorf("error = %q", errBody.Error)
	}
	s.expect(s.do(http.MethodGet, "/api/tasks?dueDate=someday", token, nil), http.StatusBadRequest, nil)
	s.expect(s.do(http.MethodGet, "/api/labels?sort=name", token, nil), http.StatusBadRequest, nil)
}

func TestCompletedTasksNeverInBuckets(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("views@example.com")

	doneToday := s.createTask(token, gin.H{"title": "Done today", "dueDate": "2026-10-15T15:00:00Z"})
	doneOverdue := s.createTask(token, gin.H{"title": "Done late", "dueDate": "2026-10-10T09:00:00Z"})
	doneInbox := s.createTask(token, gin.H{"title": "Done inbox"})
	openOverdue := s.createTask(token, gin.H{"title": "Still late", "dueDate": "2026-10-14T09:00:00Z"})
	for _, task := range []domain.Task{doneToday, doneOverdue, doneInbox} {
		s.expect(s.do(http.MethodPut, "/api/tasks/"+task.ID, token, gin.H{"completed": true}), http.StatusOK, nil)
	}

	var views struct {
		Overdue  []domain.Task `json:"overdue"`
		Today    []domain.Task `json:"today"`
		Tomorrow []domain.Task `json:"tomorrow"`
		NextWeek []domain.Task `json:"nextWeek"`
		Later    []domain.Task `json:"later"`
		Inbox    []domain.Task `json:"inbox"`
		Stats    struct {
			Total     int `json:"total"`
			Completed int `json:"completed"`
			Pending   int `json:"pending"`
			Overdue   int `json:"overdue"`
		} `json:"stats"`
	}
	s.expect(s.do(http.MethodGet, "/api/tasks/views", token, nil), http.StatusOK, &views)

	for name, bucket := range map[string][]domain.Task{
		"overdue": views.Overdue, "today": views.Today, "tomorrow": views.Tomorrow,
		"nextWeek": views.NextWeek, "later": views.Later, "inbox": views.Inbox,
	} {
		for _, task := range bucket {
			if task.Completed {
				t.Errorf("completed task %q in %s", task.Title, name)
			}
		}
	}
	if len(views.Overdue) != 1 || views.Overdue[0].ID != openOverdue.ID {
		t.Errorf("overdue = %+v", views.Overdue)
	}
	if views.Stats.Total != 4 || views.Stats.Completed != 3 || views.Stats.Pending != 1 || views.Stats.Overdue != 1 {
		t.Errorf("stats = %+v", views.Stats)
	}
}

func TestOverdueTaskInOverdueFilterNotToday(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("overdue@example.com")

	late := s.createTask(token, gin.H{"title": "Late", "dueDate": "2026-10-14T18:00:00Z"})
	today := s.createTask(token, gin.H{"title": "Today", "dueDate": "2026-10-15T18:00:00Z"})

	var overdue, dueToday []domain.Task
	s.expect(s.do(http.MethodGet, "/api/tasks?dueDate=overdue", token, nil), http.StatusOK, &overdue)
	s.expect(s.do(http.MethodGet, "/api/tasks?dueDate=today", token, nil), http.StatusOK, &dueToday)

	if ids := taskIDs(overdue); !ids[late.ID] || ids[today.ID] {
		t.Errorf("overdue filter = %v", ids)
	}
	if ids := taskIDs(dueToday); ids[late.ID] || !ids[today.ID] {
		t.Errorf("today filter = %v", ids)
	}
}

func TestTodayBoundary(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("boundary@example.com")

	lastSecond := s.createTask(token, gin.H{"title": "Last second", "dueDate": "2026-10-15T23:59:59Z"})
	midnight := s.createTask(token, gin.H{"title": "Midnight", "dueDate": "2026-10-16T00:00:00Z"})

	var dueToday []domain.Task
	s.expect(s.do(http.MethodGet, "/api/tasks?dueDate=today", token, nil), http.StatusOK, &dueToday)
	ids := taskIDs(dueToday)
	if !ids[lastSecond.ID] {
		t.Error("23:59:59 should be due today")
	}
	if ids[midnight.ID] {
		t.Error("next-day midnight should not be due today")
	}
}

func TestForeignProjectRejected(t *testing.T) {
	s := newTestServer(t)
	owner := s.signUp("owner@example.com")
	intruder := s.signUp("intruder@example.com")

	var project domain.Project
	s.expect(s.do(http.MethodPost, "/api/projects", owner, gin.H{"name": "Private"}), http.StatusCreated, &project)

	var errBody struct {
		Error string `json:"error"`
	}
	s.expect(s.do(http.MethodPost, "/api/tasks", intruder, gin.H{"title": "Sneaky", "projectId": project.ID}), http.StatusNotFound, &errBody)
	if errBody.Error != "Project not found" {
		t.Errorf("error = %q", errBody.Error)
	}
	if n := s.count(&domain.Task{}); n != 0 {
		t.Errorf("tasks stored = %d, want 0", n)
	}
	s.expect(s.do(http.MethodGet, "/api/projects/"+project.ID, intruder, nil), http.StatusNotFound, nil)
}

func TestCompletionRecordsTaskCompleted(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("activity@example.com")
	task := s.createTask(token, gin.H{"title": "Write report"})

	s.expect(s.do(http.MethodPut, "/api/tasks/"+task.ID, token, gin.H{"completed": true}), http.StatusOK, nil)
	s.expect(s.do(http.MethodPut, "/api/tasks/"+task.ID, token, gin.H{"title": "Write final report"}), http.StatusOK, nil)

	var activities []struct {
		Action string `json:"action"`
		Task   *struct {
			Title string `json:"title"`
		} `json:"task"`
	}
	s.expect(s.do(http.MethodGet, "/api/activities?taskId="+task.ID, token, nil), http.StatusOK, &activities)

	counts := map[string]int{}
	for _, a := range activities {
		counts[a.Action]++
		if a.Task == nil || a.Task.Title != "Write final report" {
			t.Errorf("activity task summary = %+v", a.Task)
		}
	}
	want := map[string]int{"TASK_CREATED": 1, "TASK_COMPLETED": 1, "TASK_UPDATED": 1}
	if len(activities) != 3 {
		t.Fatalf("activities = %d, want 3", len(activities))
	}
	for action, n := range want {
		if counts[action] != n {
			t.Errorf("%s recorded %d times, want %d", action, counts[action], n)
		}
	}
}

func TestLabelDeleteKeepsTasks(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("labels@example.com")
	task := s.createTask(token, gin.H{"title": "Tagged"})

	var label domain.Label
	s.expect(s.do(http.MethodPost, "/api/labels", token, gin.H{"name": "urgent"}), http.StatusCreated, &label)
	s.expect(s.do(http.MethodPost, "/api/task-labels", token, gin.H{"taskId": task.ID, "labelId": label.ID}), http.StatusCreated, nil)

	s.expect(s.do(http.MethodDelete, "/api/labels/"+label.ID, token, nil), http.StatusOK, nil)

	var got domain.Task
	s.expect(s.do(http.MethodGet, "/api/tasks/"+task.ID, token, nil), http.StatusOK, &got)
	if len(got.TaskLabels) != 0 {
		t.Errorf("task still has %d labels", len(got.TaskLabels))
	}
	if n := s.count(&domain.TaskLabel{}); n != 0 {
		t.Errorf("task_labels left = %d", n)
	}
}

func TestDuplicateTaskLabelRejected(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("dup@example.com")
	task := s.createTask(token, gin.H{"title": "Tagged twice"})

	var label domain.Label
	s.expect(s.do(http.MethodPost, "/api/labels", token, gin.H{"name": "home"}), http.StatusCreated, &label)
	if label.Color != "#6B7280" {
		t.Errorf("default color = %q", label.Color)
	}

	body := gin.H{"taskId": task.ID, "labelId": label.ID}
	s.expect(s.do(http.MethodPost, "/api/task-labels", token, body), http.StatusCreated, nil)

	var errBody struct {
		Error string `json:"error"`
	}
	s.expect(s.do(http.MethodPost, "/api/task-labels", token, body), http.StatusBadRequest, &errBody)
	if errBody.Error != "Label already assigned to task" {
		t.Errorf("error = %q", errBody.Error)
	}
	if n := s.count(&domain.TaskLabel{}); n != 1 {
		t.Errorf("task_labels = %d, want 1", n)
	}

	s.expect(s.do(http.MethodDelete, "/api/task-labels?taskId="+task.ID+"&labelId="+label.ID, token, nil), http.StatusOK, nil)
	s.expect(s.do(http.MethodDelete, "/api/task-labels?taskId="+task.ID+"&labelId="+label.ID, token, nil), http.StatusNotFound, nil)
}

func TestProjectRoundTripDefaults(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("projects@example.com")

	var created domain.Project
	s.expect(s.do(http.MethodPost, "/api/projects", token, gin.H{"name": "Home", "color": "#112233"}), http.StatusCreated, &created)
	if created.IsFavorite || created.IsArchived {
		t.Errorf("defaults = favorite %v archived %v", created.IsFavorite, created.IsArchived)
	}

	var got domain.Project
	s.expect(s.do(http.MethodGet, "/api/projects/"+created.ID, token, nil), http.StatusOK, &got)
	if got.Name != "Home" || got.Color != "#112233" || got.IsFavorite || got.IsArchived {
		t.Errorf("round trip = %+v", got)
	}

	var updated domain.Project
	s.expect(s.do(http.MethodPut, "/api/projects/"+created.ID, token, gin.H{"isFavorite": true}), http.StatusOK, &updated)
	if !updated.IsFavorite || updated.Name != "Home" || updated.Color != "#112233" {
		t.Errorf("partial update = %+v", updated)
	}

	var listed []domain.Project
	s.expect(s.do(http.MethodGet, "/api/projects?isFavorite=true", token, nil), http.StatusOK, &listed)
	if len(listed) != 1 || listed[0].Count == nil {
		t.Errorf("favorites = %+v", listed)
	}
}

func TestTaskDeleteRemovesDependents(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp("delete@example.com")
	task := s.createTask(token, gin.H{"title": "Going away"})

	s.expect(s.do(http.MethodPost, "/api/comments", token, gin.H{"taskId": task.ID, "content": "note"}), http.StatusCreated, nil)
	s.expect(s.do(http.MethodPost, "/api/reminders", token, gin.H{"taskId": task.ID, "dateTime": "2026-10-16T08:00:00Z", "type": "NOTIFICATION"}), http.StatusCreated, nil)

	var msg struct {
		Message string `json:"message"`
	}
	s.expect(s.do(http.MethodDelete, "/api/tasks/"+task.ID, token, nil), http.StatusOK, &msg)
	if msg.Message != "Task deleted successfully" {
		t.Errorf("message = %q", msg.Message)
	}
	if n := s.count(&domain.Comment{}); n != 0 {
		t.Errorf("comments left = %d", n)
	}
	if n := s.count(&domain.Reminder{}); n != 0 {
		t.Errorf("reminders left = %d", n)
	}
	s.expect(s.do(http.MethodGet, "/api/tasks/"+task.ID, token, nil), http.StatusNotFound, nil)
}
