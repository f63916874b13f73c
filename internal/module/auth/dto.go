package auth

// SendOTPRequest is the phone form on the login screen.
type SendOTPRequest struct {
	Phone string `json:"phone" form:"phone" binding:"required,min=9,max=16"`
}

// VerifyOTPRequest is the code form on the verify screen.
type VerifyOTPRequest struct {
	OTP string `json:"otp" form:"otp" binding:"required,len=4,numeric"`
}

// DebugLoginRequest is the development-only direct login form.
type DebugLoginRequest struct {
	Name  string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" form:"email" binding:"required,email"`
	Phone string `json:"phone" form:"phone" binding:"required,min=9,max=16"`
}
