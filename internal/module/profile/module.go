package profile

import "github.com/gin-gonic/gin"

// Module implements the app module interface for the operator profile.
type Module struct {
	handler *Handler
}

// NewModule creates a profile module.
func NewModule(gw Gateway, sessions Sessions) *Module {
	return &Module{handler: NewHandler(gw, sessions)}
}

// RegisterRoutes registers profile API and page routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	api.GET("/profile", m.handler.Me)
	api.PUT("/profile", m.handler.Update)
	api.PUT("/profile/notifications", m.handler.UpdateNotifications)
	api.PUT("/profile/preferences", m.handler.UpdatePreferences)

	pages.GET("/profile", m.handler.ProfilePage)
	pages.POST("/profile", m.handler.UpdateForm)
	pages.POST("/profile/notifications", m.handler.NotificationsForm)
	pages.POST("/profile/preferences", m.handler.PreferencesForm)
}
