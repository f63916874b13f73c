package content

// CarTypeRequest is the create/update form for a car type category.
type CarTypeRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Icon        string `json:"icon" form:"icon" binding:"omitempty,max=200"`
	Description string `json:"description" form:"description" binding:"omitempty,max=500"`
	IsActive    *bool  `json:"isActive" form:"isActive"`
	Order       *int   `json:"order" form:"order" binding:"omitempty,gte=0"`
}

// FAQRequest is the create/update form for a FAQ entry.
type FAQRequest struct {
	Question string `json:"question" form:"question" binding:"required,min=5,max=500"`
	Answer   string `json:"answer" form:"answer" binding:"required,min=5,max=5000"`
	Category string `json:"category" form:"category" binding:"omitempty,max=100"`
	IsActive *bool  `json:"isActive" form:"isActive"`
	Order    *int   `json:"order" form:"order" binding:"omitempty,gte=0"`
}

// ConfirmRequest completes a confirmation-gated delete.
type ConfirmRequest struct {
	Token  string `json:"token" form:"token" binding:"required,len=32,hexadecimal"`
	Reason string `json:"reason" form:"reason" binding:"omitempty,max=500"`
}
