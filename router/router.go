package router

import (
	"net/http"

	"testdesk/config"
	"testdesk/controllers"
	"testdesk/db"
	"testdesk/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

// Initialize wires all routes and middlewares.
// Public routes live under /auth; every page and page action lives under /app
// and needs a live session (AuthRequired + Authorizer).
func Initialize(r *gin.Engine, cfg config.Configuration, deps *controllers.Deps, database *gorm.DB, sessions *db.SessionStore, toasts *db.ToastStore) {
	logger := deps.Logger

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.Cors.AllowedOrigin))
	r.Use(db.SetDBtoContext(database, sessions, toasts))
	r.Use(controllers.SetDepsToContext(deps))

	r.GET("/health", Health)

	// Public (no session)
	auth := r.Group("/auth")
	auth.POST("/login", Logger(logger), controllers.Login)
	auth.GET("/register", Logger(logger), controllers.GetRegisterPage)
	auth.POST("/register", Logger(logger), controllers.Register)
	auth.POST("/forgot-password", Logger(logger), controllers.ForgotPassword)
	auth.GET("/reset-password", Logger(logger), controllers.GetResetPasswordPage)
	auth.POST("/reset-password", Logger(logger), controllers.ResetPassword)

	// Session required
	session := auth.Group("")
	session.Use(controllers.AuthRequired())
	session.POST("/logout", Logger(logger), controllers.Logout)
	session.POST("/refresh", Logger(logger), controllers.Refresh)
	session.GET("/me", Logger(logger), controllers.Me)

	app := r.Group("/app")
	app.Use(controllers.AuthRequired())
	app.Use(Authorizer())

	app.GET("/dashboard", Logger(logger), controllers.GetDashboard)
	app.GET("/toasts", controllers.GetToasts)

	// Executions
	app.GET("/executions", Logger(logger), controllers.GetExecutionsPage)
	app.POST("/executions/page", Logger(logger), controllers.SetExecutionsPage)
	app.POST("/executions/dialog", Logger(logger), controllers.ToggleExecuteDialog)
	app.POST("/executions/execute", Logger(logger), controllers.ExecuteTests)
	app.GET("/executions/:id", Logger(logger), controllers.GetExecutionDetail)
	app.DELETE("/executions/detail", Logger(logger), controllers.CloseExecutionDetail)

	// Modules (hierarchy manager). Targets travel in the body.
	app.GET("/modules", Logger(logger), controllers.GetModulesPage)
	app.POST("/modules/toggle", Logger(logger), controllers.ToggleModuleNode)
	app.POST("/modules/dialog", Logger(logger), controllers.OpenModuleDialog)
	app.DELETE("/modules/dialog", Logger(logger), controllers.CloseModuleDialog)
	app.POST("/modules/dialog/submit", Logger(logger), controllers.SubmitModuleDialog)
	app.POST("/modules/delete", Logger(logger), controllers.RequestModuleDelete)
	app.POST("/modules/delete/confirm", Logger(logger), controllers.ConfirmModuleDelete)
	app.DELETE("/modules/delete", Logger(logger), controllers.CancelModuleDelete)

	// Releases
	app.GET("/releases", Logger(logger), controllers.GetReleasesPage)
	app.POST("/releases/dialog", Logger(logger), controllers.OpenReleaseDialog)
	app.DELETE("/releases/dialog", Logger(logger), controllers.CloseReleaseDialog)
	app.POST("/releases/dialog/submit", Logger(logger), controllers.SubmitReleaseDialog)
	app.POST("/releases/delete", Logger(logger), controllers.RequestReleaseDelete)
	app.POST("/releases/delete/confirm", Logger(logger), controllers.ConfirmReleaseDelete)
	app.DELETE("/releases/delete", Logger(logger), controllers.CancelReleaseDelete)
	app.GET("/releases/:id", Logger(logger), controllers.GetReleaseDetail)

	// Issues
	app.GET("/issues", Logger(logger), controllers.GetIssuesPage)
	app.POST("/issues/filter", Logger(logger), controllers.FilterIssues)
	app.POST("/issues/dialog", Logger(logger), controllers.OpenIssueDialog)
	app.DELETE("/issues/dialog", Logger(logger), controllers.CloseIssueDialog)
	app.POST("/issues/save", Logger(logger), controllers.SaveIssue)
	app.POST("/issues/delete", Logger(logger), controllers.DeleteIssue)
	app.GET("/issues/:id", Logger(logger), controllers.GetIssueDetail)
	app.DELETE("/issues/detail", Logger(logger), controllers.CloseIssueDetail)

	logger.Info("routes initialized", zap.Int("count", len(r.Routes())))
}

// Health reports whether the local database answers.
func Health(c *gin.Context) {
	database := db.DBInstance(c)
	if database == nil || database.DB().PingContext(c.Request.Context()) != nil {
		controllers.RespondError(c, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	controllers.RespondSuccess(c, gin.H{"status": "ok"})
}
