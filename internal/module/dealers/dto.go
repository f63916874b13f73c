package dealers

// DealerRequest is the create/update form for a dealer.
type DealerRequest struct {
	Name             string `json:"name" form:"name" binding:"required,min=2,max=200"`
	Code             string `json:"code" form:"code" binding:"omitempty,max=50"`
	ContactPerson    string `json:"contactPerson" form:"contactPerson" binding:"omitempty,max=100"`
	ContactPhone     string `json:"contactPhone" form:"contactPhone" binding:"omitempty,min=9,max=16"`
	ContactEmail     string `json:"contactEmail" form:"contactEmail" binding:"omitempty,email"`
	CommercialRegNum string `json:"commercialRegNumber" form:"commercialRegNumber" binding:"omitempty,max=50"`
	VATNumber        string `json:"vatNumber" form:"vatNumber" binding:"omitempty,max=50"`
	Logo             string `json:"logo" form:"logo" binding:"omitempty,url"`
	Street           string `json:"street" form:"street" binding:"omitempty,max=200"`
	City             string `json:"city" form:"city" binding:"omitempty,max=100"`
	Country          string `json:"country" form:"country" binding:"omitempty,max=100"`
}

// ActionRequest begins or directly executes a lifecycle action.
type ActionRequest struct {
	Reason string `json:"reason" form:"reason" binding:"omitempty,max=500"`
}

// ConfirmRequest completes a confirmation-gated lifecycle action.
type ConfirmRequest struct {
	Token  string `json:"token" form:"token" binding:"required,len=32,hexadecimal"`
	Reason string `json:"reason" form:"reason" binding:"omitempty,max=500"`
}
