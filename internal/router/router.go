package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/config"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/handler"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/middleware"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
)

// SetupRouter configures the Gin engine and mounts the full API surface.
func SetupRouter(cfg *config.Config, store storage.Storage, log *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Recovery(log))

	// built frontend, when present
	r.Static("/assets", "./web/dist/assets")
	r.StaticFile("/", "./web/dist/index.html")

	api := r.Group("/api")

	exerciseHandler := handler.NewExerciseHandler(store, log)
	api.GET("/exercises", exerciseHandler.List)
	api.GET("/exercises/:category", exerciseHandler.ListByCategory)
	api.POST("/exercises", exerciseHandler.Create)
	api.PATCH("/exercises/:id", exerciseHandler.Update)
	api.DELETE("/exercises/:id", exerciseHandler.Delete)
	api.POST("/exercises/import", exerciseHandler.Import)

	exportHandler := handler.NewExportHandler(store, log)
	api.GET("/exercises/export/csv", exportHandler.ExportCSV)
	api.GET("/exercises/export/xlsx", exportHandler.ExportXLSX)

	workoutLogHandler := handler.NewWorkoutLogHandler(store, log)
	api.POST("/workout-logs", workoutLogHandler.Create)
	api.GET("/workout-logs", workoutLogHandler.List)
	api.GET("/workout-logs/latest", workoutLogHandler.Latest)

	weightHandler := handler.NewWeightHandler(store, log)
	api.GET("/weight-entries", weightHandler.List)
	api.GET("/weight-entries/range", weightHandler.ListRange)
	api.POST("/weight-entries", weightHandler.Create)
	api.PATCH("/weight-entries/:id", weightHandler.Update)
	api.DELETE("/weight-entries/:id", weightHandler.Delete)
	api.POST("/weight-entries/import", weightHandler.Import)

	bloodHandler := handler.NewBloodHandler(store, log)
	api.GET("/blood-entries", bloodHandler.List)
	api.GET("/blood-entries/:id", bloodHandler.Get)
	api.POST("/blood-entries", bloodHandler.Create)
	api.PATCH("/blood-entries/:id", bloodHandler.Update)
	api.DELETE("/blood-entries/:id", bloodHandler.Delete)
	api.POST("/blood-entries/import", bloodHandler.Import)

	recordHandler := handler.NewRecordHandler(store, log)
	api.GET("/personal-records", recordHandler.List)
	api.POST("/personal-records", recordHandler.Create)
	api.POST("/personal-records/reorder", recordHandler.Reorder)
	api.PATCH("/personal-records/:id", recordHandler.Update)
	api.DELETE("/personal-records/:id", recordHandler.Delete)

	auditHandler := handler.NewAuditLogHandler(store, log)
	api.GET("/weight-audits", auditHandler.ListWeightAudits)
	api.GET("/exercise-audits", auditHandler.ListChangesAudits)
	api.GET("/pr-audits", auditHandler.ListPRChangesAudits)

	quoteHandler := handler.NewQuoteHandler(store, log)
	api.GET("/quotes", quoteHandler.List)
	api.GET("/quotes/active", quoteHandler.ListActive)
	api.GET("/quotes/random", quoteHandler.Random)
	api.POST("/quotes", quoteHandler.Create)
	api.PATCH("/quotes/:id", quoteHandler.Update)
	api.DELETE("/quotes/:id", quoteHandler.Delete)
	api.POST("/quotes/import", quoteHandler.Import)

	affirmationHandler := handler.NewAffirmationHandler(store, log)
	api.GET("/affirmations", affirmationHandler.List)
	api.GET("/affirmations/active", affirmationHandler.ListActive)
	api.POST("/affirmations", affirmationHandler.Create)
	api.POST("/affirmations/bulk", affirmationHandler.CreateBulk)
	api.PATCH("/affirmations/:id", affirmationHandler.Update)
	api.DELETE("/affirmations/:id", affirmationHandler.Delete)

	thoughtHandler := handler.NewThoughtHandler(store, log)
	api.GET("/thoughts", thoughtHandler.List)
	api.POST("/thoughts", thoughtHandler.Create)
	api.PATCH("/thoughts/:id", thoughtHandler.Update)
	api.DELETE("/thoughts/:id", thoughtHandler.Delete)

	supplementHandler := handler.NewSupplementHandler(store, log)
	api.GET("/supplements", supplementHandler.List)
	api.POST("/supplements", supplementHandler.Create)
	api.POST("/supplements/bulk", supplementHandler.CreateBulk)
	api.PATCH("/supplements/:id", supplementHandler.Update)
	api.DELETE("/supplements/:id", supplementHandler.Delete)

	photoHandler := handler.NewPhotoHandler(store, log)
	api.GET("/photo-progress", photoHandler.List)
	api.POST("/photo-progress", photoHandler.Create)
	api.PATCH("/photo-progress/:id", photoHandler.Update)
	api.DELETE("/photo-progress/:id", photoHandler.Delete)

	stepsHandler := handler.NewStepsHandler(store, log)
	api.GET("/step-entries", stepsHandler.List)
	api.GET("/step-entries/stats", stepsHandler.Stats)
	api.POST("/step-entries", stepsHandler.Create)
	api.PATCH("/step-entries/:id", stepsHandler.Update)
	api.DELETE("/step-entries/:id", stepsHandler.Delete)

	cardioHandler := handler.NewCardioHandler(store, log, cfg.VoiceParser.URL)
	api.GET("/cardio-log-entries", cardioHandler.List)
	api.GET("/cardio-log-entries/stats", cardioHandler.Stats)
	api.POST("/cardio-log-entries", cardioHandler.Create)
	api.PATCH("/cardio-log-entries/:id", cardioHandler.Update)
	api.DELETE("/cardio-log-entries/:id", cardioHandler.Delete)
	api.POST("/cardio-log-entries/parse-voice", cardioHandler.ParseVoice)

	settingsHandler := handler.NewSettingsHandler(store, log)
	api.GET("/shortcut-settings", settingsHandler.ListShortcuts)
	api.PATCH("/shortcut-settings/:id", settingsHandler.UpdateShortcut)
	api.GET("/tab-settings", settingsHandler.ListTabs)
	api.PATCH("/tab-settings/:id", settingsHandler.UpdateTab)
	api.GET("/user-settings", settingsHandler.GetUserSettings)
	api.PATCH("/user-settings", settingsHandler.UpdateUserSettings)

	return r
}
