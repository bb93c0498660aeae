package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mghazyfawazh/smart-attendance/internal/export"
	"github.com/mghazyfawazh/smart-attendance/internal/middleware"
	"github.com/mghazyfawazh/smart-attendance/internal/models"
	"github.com/mghazyfawazh/smart-attendance/internal/schedule"
)

// ScheduleService is the engine as seen by HTTP handlers.
type ScheduleService interface {
	FullSchedule(ctx context.Context, c schedule.Caller) ([]models.ClassPeriod, error)
	TodaySchedule(ctx context.Context, c schedule.Caller) (models.TodaySchedule, error)
	CreateEntry(ctx context.Context, c schedule.Caller, in models.EntryInput) (primitive.ObjectID, error)
	DeleteEntry(ctx context.Context, c schedule.Caller, entryID string) error
	ReplaceSchedule(ctx context.Context, c schedule.Caller, in []models.EntryInput) (int, error)
}

// MigrationRunner runs the legacy timetable migration.
type MigrationRunner interface {
	Run(ctx context.Context) (schedule.MigrationResult, error)
}

type Handler struct {
	Service  ScheduleService
	Migrator MigrationRunner
	Log      *zap.Logger
}

func NewHandler(svc ScheduleService, migrator MigrationRunner, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Service: svc, Migrator: migrator, Log: log}
}

type ReplaceRequest struct {
	Entries []models.EntryInput `json:"entries" binding:"required,dive"`
}

// writeError maps engine errors to HTTP responses.
func (h *Handler) writeError(c *gin.Context, err error) {
	var ref *schedule.SubjectReferenceError
	switch {
	case errors.As(err, &ref):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject reference", "subject_id": ref.SubjectID})
	case errors.Is(err, schedule.ErrRoleNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, schedule.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	case errors.Is(err, schedule.ErrNotFoundOrForbidden):
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule entry not found"})
	case errors.Is(err, schedule.ErrInvalidIdentifier):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
	case errors.Is(err, schedule.ErrInvalidEntry):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Log.Error("schedule request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// GetSchedule godoc
// @Summary  Full schedule for the caller
// @Tags     schedule
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} models.ClassPeriod
// @Router   /api/schedule [get]
func (h *Handler) GetSchedule(c *gin.Context) {
	out, err := h.Service.FullSchedule(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetToday godoc
// @Summary  Today's classes for the caller, ordered by start time
// @Tags     schedule
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} models.TodaySchedule
// @Router   /api/schedule/today [get]
func (h *Handler) GetToday(c *gin.Context) {
	out, err := h.Service.TodaySchedule(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary  Add one entry to the caller's schedule
// @Tags     schedule
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    entry body models.EntryInput true "entry"
// @Success  201 {object} map[string]string
// @Router   /api/schedule [post]
func (h *Handler) Create(c *gin.Context) {
	var in models.EntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.Service.CreateEntry(c.Request.Context(), middleware.CallerFrom(c), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// Delete godoc
// @Summary  Delete one of the caller's entries
// @Tags     schedule
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "entry id"
// @Success  200 {object} map[string]string
// @Router   /api/schedule/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.Service.DeleteEntry(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Replace godoc
// @Summary  Replace the caller's whole schedule
// @Tags     schedule
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body ReplaceRequest true "new schedule"
// @Success  200 {object} map[string]int
// @Router   /api/schedule [put]
func (h *Handler) Replace(c *gin.Context) {
	var in ReplaceRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.Service.ReplaceSchedule(c.Request.Context(), middleware.CallerFrom(c), in.Entries)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

// Export godoc
// @Summary  Caller's full schedule as an xlsx workbook
// @Tags     schedule
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success  200 {file} file
// @Router   /api/schedule/export [get]
func (h *Handler) Export(c *gin.Context) {
	periods, err := h.Service.FullSchedule(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	data, err := export.Timetable(periods)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="timetable.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// MigrateLegacy godoc
// @Summary  Run the legacy timetable migration
// @Tags     admin
// @Produce  json
// @Param    x-api-key header string true "admin key"
// @Success  200 {object} schedule.MigrationResult
// @Router   /api/admin/migrate-legacy [post]
func (h *Handler) MigrateLegacy(c *gin.Context) {
	res, err := h.Migrator.Run(c.Request.Context())
	if err != nil {
		h.Log.Error("legacy migration failed", zap.String("run_id", res.RunID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Register mounts the schedule routes.
func Register(r *gin.Engine, h *Handler, jwtSecret, adminKey string) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	sched := api.Group("/schedule", middleware.BearerAuth(jwtSecret))
	sched.GET("", h.GetSchedule)
	sched.GET("/today", h.GetToday)
	sched.GET("/export", h.Export)
	sched.POST("", h.Create)
	sched.PUT("", h.Replace)
	sched.DELETE("/:id", h.Delete)

	admin := api.Group("/admin", middleware.APIKeyAuth(adminKey))
	admin.POST("/migrate-legacy", h.MigrateLegacy)
}
