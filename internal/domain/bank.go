package domain

// ContactPerson is a bank's named contact.
type ContactPerson struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// LoanTerms holds the lending parameters a bank advertises.
type LoanTerms struct {
	MinAmount    float64 `json:"minAmount,omitempty"`
	MaxAmount    float64 `json:"maxAmount,omitempty"`
	InterestRate float64 `json:"interestRate,omitempty"`
	MaxTenure    int     `json:"maxTenure,omitempty"`
}

// Bank is a partner bank record. Banks have no status field; the list tabs
// filter on IsActive.
type Bank struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Code          string         `json:"code,omitempty"`
	Logo          string         `json:"logo,omitempty"`
	ContactPerson *ContactPerson `json:"contactPerson,omitempty"`
	LoanTerms     *LoanTerms     `json:"loanTerms,omitempty"`
	IsActive      bool           `json:"isActive"`
	Timestamps
}
