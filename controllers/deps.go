package controllers

import (
	"time"

	"testdesk/config"
	"testdesk/pages"
	"testdesk/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const depsKey = "deps"

// Deps is everything a page controller needs besides the stores in db.
type Deps struct {
	Config config.Configuration
	Logger *zap.Logger
	Views  *pages.ViewStore
	Now    func() time.Time

	TestCases  services.TestCasesAPI
	Modules    services.ModulesAPI
	SubModules services.SubModulesAPI
	Features   services.FeaturesAPI
	Releases   services.ReleasesAPI
	Executions services.ExecutionsAPI
	Issues     services.IssueService
	Auth       services.AuthService
}

func NewDeps(conf config.Configuration, logger *zap.Logger, backend services.Backend) *Deps {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Deps{
		Config:     conf,
		Logger:     logger,
		Views:      pages.NewViewStore(),
		Now:        time.Now,
		TestCases:  services.NewTestCasesAPI(backend),
		Modules:    services.NewModulesAPI(backend),
		SubModules: services.NewSubModulesAPI(backend),
		Features:   services.NewFeaturesAPI(backend),
		Releases:   services.NewReleasesAPI(backend),
		Executions: services.NewExecutionsAPI(backend),
		Issues:     services.NewIssueService(backend),
		Auth:       services.NewAuthService(backend),
	}
}

func (d *Deps) hierarchyAPIs() pages.HierarchyAPIs {
	return pages.HierarchyAPIs{Modules: d.Modules, SubModules: d.SubModules, Features: d.Features, TestCases: d.TestCases}
}

func (d *Deps) executionsAPIs() pages.ExecutionsAPIs {
	return pages.ExecutionsAPIs{Executions: d.Executions, TestCases: d.TestCases, Releases: d.Releases}
}

func SetDepsToContext(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(depsKey, d)
		c.Next()
	}
}

func DepsInstance(c *gin.Context) *Deps {
	v, ok := c.Get(depsKey)
	if !ok {
		return nil
	}
	d, _ := v.(*Deps)
	return d
}
