package users

// UserRequest is the create/update form for a platform user.
type UserRequest struct {
	Name             string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email            string `json:"email" form:"email" binding:"required,email"`
	Phone            string `json:"phone" form:"phone" binding:"required,min=9,max=16"`
	PhoneCountryCode string `json:"phoneCountryCode" form:"phoneCountryCode" binding:"omitempty,max=5"`
	Role             string `json:"role" form:"role" binding:"required,oneof=admin manager sales staff financial-approval client"`
	Position         string `json:"position" form:"position" binding:"omitempty,max=100"`
	NationalID       string `json:"nationalId" form:"nationalId" binding:"omitempty,max=30"`
}

// ConfirmRequest completes a confirmation-gated lifecycle action.
type ConfirmRequest struct {
	Token  string `json:"token" form:"token" binding:"required,len=32,hexadecimal"`
	Reason string `json:"reason" form:"reason" binding:"omitempty,max=500"`
}
