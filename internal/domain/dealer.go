package domain

import "time"

// Dealer lifecycle statuses. A dealer holds exactly one status at a time.
const (
	DealerStatusPending = "pending"
	DealerStatusActive  = "active"
	DealerStatusBlocked = "blocked"
	DealerStatusDeleted = "deleted"
)

// Address is a dealer's postal address. All fields are optional on the wire.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Document is an uploaded dealer document reference.
type Document struct {
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	Name       string    `json:"name,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// BankDetails holds a dealer's payout account.
type BankDetails struct {
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IBAN          string `json:"iban,omitempty"`
}

// Dealer is a dealership record as returned by the loan-platform backend.
type Dealer struct {
	ID                 string       `json:"_id"`
	Name               string       `json:"name"`
	Code               string       `json:"code"`
	Rating             float64      `json:"rating,omitempty"`
	Address            *Address     `json:"address,omitempty"`
	ContactPerson      string       `json:"contactPerson,omitempty"`
	ContactPhone       string       `json:"contactPhone,omitempty"`
	ContactEmail       string       `json:"contactEmail,omitempty"`
	IsActive           bool         `json:"isActive"`
	Status             string       `json:"status"`
	CommercialRegNum   string       `json:"commercialRegNumber,omitempty"`
	VATNumber          string       `json:"vatNumber,omitempty"`
	Logo               string       `json:"logo,omitempty"`
	Documents          []Document   `json:"documents,omitempty"`
	BankDetails        *BankDetails `json:"bankDetails,omitempty"`
	BlockedReason      string       `json:"blockedReason,omitempty"`
	BlockedAt          *time.Time   `json:"blockedAt,omitempty"`
	DeletedReason      string       `json:"deletedReason,omitempty"`
	DeletedAt          *time.Time   `json:"deletedAt,omitempty"`
	TotalLoans         int          `json:"totalLoans,omitempty"`
	TotalApprovedLoans int          `json:"totalApprovedLoans,omitempty"`
	Timestamps
}
