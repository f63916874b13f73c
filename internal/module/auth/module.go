package auth

import "github.com/gin-gonic/gin"

// Module implements the app module interface for the sign-in flow. Its
// routes are public: the session gate does not apply to them.
type Module struct {
	handler *Handler
	debug   bool
}

// NewModule creates the auth module. When debug is true the direct login
// endpoint is registered alongside the OTP flow.
func NewModule(h *Handler, debug bool) *Module {
	if h == nil {
		panic("auth.NewModule: handler must not be nil")
	}
	return &Module{handler: h, debug: debug}
}

// RegisterRoutes registers the sign-in pages on the public page group and
// the logout endpoint on the API group.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	pages.GET("/login", m.handler.LoginPage)
	pages.POST("/login", m.handler.SendOTP)
	pages.GET("/verify", m.handler.VerifyPage)
	pages.POST("/verify", m.handler.VerifyOTP)
	pages.POST("/resend", m.handler.ResendOTP)
	pages.POST("/logout", m.handler.Logout)

	if m.debug {
		pages.POST("/debug-login", m.handler.DebugLogin)
	}
}
