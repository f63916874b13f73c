package dashboard

import "github.com/gin-gonic/gin"

// Module implements the app module interface for the dashboard.
type Module struct {
	handler *Handler
}

// NewModule creates a dashboard module wired to the given gateway slice.
func NewModule(gw Gateway) *Module {
	return &Module{handler: NewHandler(gw)}
}

// RegisterRoutes registers dashboard API and page routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	api.GET("/dashboard/stats", m.handler.Stats)
	api.GET("/dashboard/activity", m.handler.Activity)

	pages.GET("/", m.handler.HomePage)
}
