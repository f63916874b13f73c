package dealers

import "github.com/gin-gonic/gin"

// Module implements the app module interface for the dealer domain.
type Module struct {
	handler     *Handler
	pageHandler *PageHandler
}

// NewModule creates a dealer module wired to the given gateway slice.
func NewModule(gw Gateway) *Module {
	h := NewHandler(gw)
	return &Module{handler: h, pageHandler: NewPageHandler(gw, h)}
}

// RegisterRoutes registers dealer API and page routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	api.GET("/dealers", m.handler.List)
	api.GET("/dealers/:id", m.handler.Get)
	api.POST("/dealers", m.handler.Create)
	api.PUT("/dealers/:id", m.handler.Update)
	api.POST("/dealers/:id/actions/confirm", m.handler.Confirm)
	api.POST("/dealers/:id/actions/:action", m.handler.Action)

	pages.GET("/dealers", m.pageHandler.ListPage)
	pages.GET("/dealers/new", m.pageHandler.NewPage)
	pages.POST("/dealers", m.pageHandler.CreateForm)
	pages.GET("/dealers/:id", m.pageHandler.DetailPage)
	pages.GET("/dealers/:id/edit", m.pageHandler.EditPage)
	pages.POST("/dealers/:id", m.pageHandler.UpdateForm)
	pages.POST("/dealers/:id/actions/:action", m.pageHandler.ActionForm)
	pages.POST("/dealers/:id/actions/:action/confirm", m.pageHandler.ConfirmForm)
}
