package users

import "github.com/gin-gonic/gin"

// Module implements the app module interface for platform users.
type Module struct {
	handler     *Handler
	pageHandler *PageHandler
}

// NewModule creates a user module wired to the given gateway slice.
func NewModule(gw Gateway) *Module {
	h := NewHandler(gw)
	return &Module{handler: h, pageHandler: NewPageHandler(gw, h)}
}

// RegisterRoutes registers user API and page routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	api.GET("/users", m.handler.List)
	api.GET("/users/:id", m.handler.Get)
	api.POST("/users", m.handler.Create)
	api.PUT("/users/:id", m.handler.Update)
	api.POST("/users/:id/actions/confirm", m.handler.Confirm)
	api.POST("/users/:id/actions/:action", m.handler.Action)

	pages.GET("/users", m.pageHandler.ListPage)
	pages.GET("/users/new", m.pageHandler.NewPage)
	pages.POST("/users", m.pageHandler.CreateForm)
	pages.GET("/users/:id", m.pageHandler.DetailPage)
	pages.GET("/users/:id/edit", m.pageHandler.EditPage)
	pages.POST("/users/:id", m.pageHandler.UpdateForm)
	pages.POST("/users/:id/actions/:action", m.pageHandler.ActionForm)
	pages.POST("/users/:id/actions/:action/confirm", m.pageHandler.ConfirmForm)
}
