package banks

// BankRequest is the create/update form for a partner bank.
type BankRequest struct {
	Name         string  `json:"name" form:"name" binding:"required,min=2,max=200"`
	Code         string  `json:"code" form:"code" binding:"omitempty,max=50"`
	Logo         string  `json:"logo" form:"logo" binding:"omitempty,url"`
	ContactName  string  `json:"contactName" form:"contactName" binding:"omitempty,max=100"`
	ContactEmail string  `json:"contactEmail" form:"contactEmail" binding:"omitempty,email"`
	ContactPhone string  `json:"contactPhone" form:"contactPhone" binding:"omitempty,min=9,max=16"`
	MinAmount    float64 `json:"minAmount" form:"minAmount" binding:"omitempty,gte=0"`
	MaxAmount    float64 `json:"maxAmount" form:"maxAmount" binding:"omitempty,gtefield=MinAmount"`
	InterestRate float64 `json:"interestRate" form:"interestRate" binding:"omitempty,gte=0,lte=100"`
	MaxTenure    int     `json:"maxTenure" form:"maxTenure" binding:"omitempty,gte=0,lte=120"`
}

// ConfirmRequest completes a confirmation-gated lifecycle action.
type ConfirmRequest struct {
	Token  string `json:"token" form:"token" binding:"required,len=32,hexadecimal"`
	Reason string `json:"reason" form:"reason" binding:"omitempty,max=500"`
}
