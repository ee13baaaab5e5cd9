package controllers

import (
	"testdesk/models"
	"testdesk/pages"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GET /app/dashboard
// The three lists are fetched in parallel. If any fetch fails the whole
// dashboard falls back to zeros; partial figures are never shown.
func GetDashboard(c *gin.Context) {
	deps := DepsInstance(c)

	var (
		testCases []models.TestCase
		modules   []models.Module
		releases  []models.Release
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		testCases, err = deps.TestCases.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		modules, err = deps.Modules.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		releases, err = deps.Releases.List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		deps.Logger.Warn("dashboard fetch failed", zap.Error(err))
		RespondSuccess(c, pages.EmptyDashboard())
		return
	}
	RespondSuccess(c, pages.BuildDashboard(testCases, modules, releases, deps.Now()))
}
