package loans

import "github.com/gin-gonic/gin"

// Module implements the app module interface for bank loans. All routes
// are read-only.
type Module struct {
	handler     *Handler
	pageHandler *PageHandler
}

// NewModule creates a loan module wired to the given gateway slice.
func NewModule(gw Gateway) *Module {
	return &Module{handler: NewHandler(gw), pageHandler: NewPageHandler(gw)}
}

// RegisterRoutes registers loan API and page routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	api.GET("/loans", m.handler.List)
	api.GET("/loans/:id", m.handler.Get)

	pages.GET("/loans", m.pageHandler.ListPage)
	pages.GET("/loans/:id", m.pageHandler.DetailPage)
}
