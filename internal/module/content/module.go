package content

import "github.com/gin-gonic/gin"

// Module implements the app module interface for site content: car type
// categories and FAQ entries.
type Module struct {
	handler     *Handler
	pageHandler *PageHandler
}

// NewModule creates a content module wired to the given gateway slice.
func NewModule(gw Gateway) *Module {
	h := NewHandler(gw)
	return &Module{handler: h, pageHandler: NewPageHandler(gw, h)}
}

// RegisterRoutes registers content API and page routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	api.GET("/car-types", m.handler.ListCarTypes)
	api.POST("/car-types", m.handler.CreateCarType)
	api.PUT("/car-types/:id", m.handler.UpdateCarType)
	api.POST("/car-types/:id/actions/delete", m.handler.DeleteCarType)

	api.GET("/faqs", m.handler.ListFAQs)
	api.POST("/faqs", m.handler.CreateFAQ)
	api.PUT("/faqs/:id", m.handler.UpdateFAQ)
	api.POST("/faqs/:id/actions/delete", m.handler.DeleteFAQ)

	api.POST("/content/actions/confirm", m.handler.Confirm)

	pages.GET("/car-types", m.pageHandler.CarTypesPage)
	pages.GET("/car-types/new", m.pageHandler.NewCarTypePage)
	pages.POST("/car-types", m.pageHandler.CreateCarTypeForm)
	pages.GET("/car-types/:id/edit", m.pageHandler.EditCarTypePage)
	pages.POST("/car-types/:id", m.pageHandler.UpdateCarTypeForm)
	pages.POST("/car-types/:id/toggle", m.pageHandler.ToggleCarTypeForm)
	pages.POST("/car-types/:id/actions/delete", m.pageHandler.DeleteCarTypeForm)

	pages.GET("/faqs", m.pageHandler.FAQsPage)
	pages.GET("/faqs/new", m.pageHandler.NewFAQPage)
	pages.POST("/faqs", m.pageHandler.CreateFAQForm)
	pages.GET("/faqs/:id/edit", m.pageHandler.EditFAQPage)
	pages.POST("/faqs/:id", m.pageHandler.UpdateFAQForm)
	pages.POST("/faqs/:id/toggle", m.pageHandler.ToggleFAQForm)
	pages.POST("/faqs/:id/actions/delete", m.pageHandler.DeleteFAQForm)

	pages.POST("/content/actions/confirm", m.pageHandler.ConfirmForm)
}
