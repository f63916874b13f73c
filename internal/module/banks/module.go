package banks

import "github.com/gin-gonic/gin"

// Module implements the app module interface for partner banks.
type Module struct {
	handler     *Handler
	pageHandler *PageHandler
}

// NewModule creates a bank module wired to the given gateway slice.
func NewModule(gw Gateway) *Module {
	h := NewHandler(gw)
	return &Module{handler: h, pageHandler: NewPageHandler(gw, h)}
}

// RegisterRoutes registers bank API and page routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	api.GET("/banks", m.handler.List)
	api.GET("/banks/:id", m.handler.Get)
	api.POST("/banks", m.handler.Create)
	api.PUT("/banks/:id", m.handler.Update)
	api.POST("/banks/:id/actions/confirm", m.handler.Confirm)
	api.POST("/banks/:id/actions/:action", m.handler.Action)

	pages.GET("/banks", m.pageHandler.ListPage)
	pages.GET("/banks/new", m.pageHandler.NewPage)
	pages.POST("/banks", m.pageHandler.CreateForm)
	pages.GET("/banks/:id", m.pageHandler.DetailPage)
	pages.GET("/banks/:id/edit", m.pageHandler.EditPage)
	pages.POST("/banks/:id", m.pageHandler.UpdateForm)
	pages.POST("/banks/:id/actions/:action", m.pageHandler.ActionForm)
	pages.POST("/banks/:id/actions/:action/confirm", m.pageHandler.ConfirmForm)
}
