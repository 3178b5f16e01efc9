package api

import (
	"fmt"
	"log"
	"time"

	activityDelivery "taskboard-backend/internal/activity/delivery"
	activityRepo "taskboard-backend/internal/activity/repository"
	activityUsecase "taskboard-backend/internal/activity/usecase"
	attachmentDelivery "taskboard-backend/internal/attachment/delivery"
	attachmentRepo "taskboard-backend/internal/attachment/repository"
	"taskboard-backend/internal/attachment/storage"
	attachmentUsecase "taskboard-backend/internal/attachment/usecase"
	authDelivery "taskboard-backend/internal/auth/delivery"
	authRepo "taskboard-backend/internal/auth/repository"
	authUsecase "taskboard-backend/internal/auth/usecase"
	commentDelivery "taskboard-backend/internal/comment/delivery"
	commentRepo "taskboard-backend/internal/comment/repository"
	commentUsecase "taskboard-backend/internal/comment/usecase"
	labelDelivery "taskboard-backend/internal/label/delivery"
	labelRepo "taskboard-backend/internal/label/repository"
	labelUsecase "taskboard-backend/internal/label/usecase"
	projectDelivery "taskboard-backend/internal/project/delivery"
	projectRepo "taskboard-backend/internal/project/repository"
	projectUsecase "taskboard-backend/internal/project/usecase"
	reminderDelivery "taskboard-backend/internal/reminder/delivery"
	reminderRepo "taskboard-backend/internal/reminder/repository"
	reminderUsecase "taskboard-backend/internal/reminder/usecase"
	taskDelivery "taskboard-backend/internal/task/delivery"
	taskRepo "taskboard-backend/internal/task/repository"
	taskUsecase "taskboard-backend/internal/task/usecase"
	"taskboard-backend/pkg/config"
	"taskboard-backend/pkg/database"
	"taskboard-backend/pkg/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	taskUsecase taskUsecase.TaskUsecase
	config      *config.Config

	authHandler       *authDelivery.AuthHandler
	projectHandler    *projectDelivery.ProjectHandler
	taskHandler       *taskDelivery.TaskHandler
	labelHandler      *labelDelivery.LabelHandler
	commentHandler    *commentDelivery.CommentHandler
	reminderHandler   *reminderDelivery.ReminderHandler
	activityHandler   *activityDelivery.ActivityHandler
	attachmentHandler *attachmentDelivery.AttachmentHandler
}

// NewHandler builds repositories, use cases and HTTP handlers on top of db.
func NewHandler(db *gorm.DB, cfg *config.Config) (*Handler, error) {
	userRepository := authRepo.NewUserRepository(db)
	fcmTokenRepository := authRepo.NewFCMTokenRepository(db)
	projectRepository := projectRepo.NewProjectRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	labelRepository := labelRepo.NewLabelRepository(db)
	taskLabelRepository := labelRepo.NewTaskLabelRepository(db)
	commentRepository := commentRepo.NewCommentRepository(db)
	reminderRepository := reminderRepo.NewReminderRepository(db)
	activityRepository := activityRepo.NewActivityRepository(db)
	attachmentRepository := attachmentRepo.NewAttachmentRepository(db)

	transactor := database.NewTransactor(db)
	recorder := activityUsecase.NewRecorder(activityRepository)

	localStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("attachment storage: %w", err)
	}

	authUc := authUsecase.NewAuthUsecase(userRepository, fcmTokenRepository, cfg)
	projectUc := projectUsecase.NewProjectUsecase(projectRepository, recorder, transactor)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository, projectRepository, labelRepository, taskLabelRepository, recorder, transactor, cfg.Location)
	taskUc.SetAttachmentStorage(localStorage)
	labelUc := labelUsecase.NewLabelUsecase(labelRepository, taskLabelRepository, taskRepository, recorder, transactor)
	commentUc := commentUsecase.NewCommentUsecase(commentRepository, taskRepository, recorder, transactor)
	reminderUc := reminderUsecase.NewReminderUsecase(reminderRepository, taskRepository)
	activityUc := activityUsecase.NewActivityUsecase(activityRepository)
	attachmentUc := attachmentUsecase.NewAttachmentUsecase(attachmentRepository, taskRepository, localStorage, recorder, transactor, cfg.MaxUploadBytes)

	log.Printf("[API] Handlers initialized (uploads in %s)", cfg.UploadDir)

	return &Handler{
		authUsecase:       authUc,
		taskUsecase:       taskUc,
		config:            cfg,
		authHandler:       authDelivery.NewAuthHandler(authUc),
		projectHandler:    projectDelivery.NewProjectHandler(projectUc),
		taskHandler:       taskDelivery.NewTaskHandler(taskUc),
		labelHandler:      labelDelivery.NewLabelHandler(labelUc),
		commentHandler:    commentDelivery.NewCommentHandler(commentUc),
		reminderHandler:   reminderDelivery.NewReminderHandler(reminderUc),
		activityHandler:   activityDelivery.NewActivityHandler(activityUc),
		attachmentHandler: attachmentDelivery.NewAttachmentHandler(attachmentUc),
	}, nil
}

// SetClock overrides the time source used for due-date buckets.
func (h *Handler) SetClock(now func() time.Time) {
	h.taskUsecase.SetClock(now)
}

// Router returns a gin engine with middleware and every route registered.
func (h *Handler) Router() *gin.Engine {
	validation.Setup()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(h.config.AllowedOrigins)))

	SetupRoutes(r, h)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Router().Run(addr)
}

// corsConfig echoes any origin when no allow-list is configured.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Authorization", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowOriginFunc = func(string) bool { return true }
	}
	return cfg
}
