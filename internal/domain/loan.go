package domain

import "time"

// Loan statuses. The status is backend-owned: the portal displays it and
// never originates a transition.
const (
	LoanStatusPending   = "pending"
	LoanStatusApproved  = "approved"
	LoanStatusRejected  = "rejected"
	LoanStatusClosed    = "closed"
	LoanStatusCancelled = "cancelled"
)

// Workflow phase types referenced by the field derivation fallbacks.
const (
	PhaseDealershipSelection = "dealership_selection"
	PhaseDealershipPricing   = "dealership_pricing"
	PhaseBankOffers          = "bank_offers"
	PhaseClientPersonalInfo  = "client_personal_info"
)

// Phase is one stage of a loan application's backend-driven workflow. Data is
// a loosely-typed payload whose shape varies per phase type; the derive
// package reads it through ordered fallback accessors.
type Phase struct {
	Type        string         `json:"type"`
	Status      string         `json:"status"`
	Deadline    *time.Time     `json:"deadline,omitempty"`
	StartedAt   *time.Time     `json:"startedAt,omitempty"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

// LoanCustomer is the applicant as embedded in a loan record.
type LoanCustomer struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId,omitempty"`
}

// VehiclePricing is the optional pricing block of a loan's vehicle.
type VehiclePricing struct {
	ListPrice float64 `json:"listPrice,omitempty"`
	SalePrice float64 `json:"salePrice,omitempty"`
}

// LoanVehicle is the financed vehicle as embedded in a loan record.
type LoanVehicle struct {
	ID            string          `json:"_id"`
	Make          string          `json:"make"`
	Model         string          `json:"model"`
	Year          int             `json:"year"`
	VIN           string          `json:"vin,omitempty"`
	Mileage       int             `json:"mileage,omitempty"`
	ExteriorColor string          `json:"exteriorColor,omitempty"`
	Pricing       *VehiclePricing `json:"pricing,omitempty"`
}

// LoanBank is the lending bank as embedded in a loan record.
type LoanBank struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// LoanDealership is the selling dealership as embedded in a loan record.
type LoanDealership struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Loan is a bank-loan application. Several canonical fields (LoanAmount,
// Customer, Dealership) may be absent early in the workflow, with the same
// fact living in a phase payload instead; display values come from the
// derive package, never from these fields directly.
type Loan struct {
	ID               string          `json:"_id"`
	LoanNumber       string          `json:"loanNumber"`
	Customer         *LoanCustomer   `json:"customer,omitempty"`
	Vehicle          *LoanVehicle    `json:"vehicle,omitempty"`
	Bank             *LoanBank       `json:"bank,omitempty"`
	Dealership       *LoanDealership `json:"dealership,omitempty"`
	LoanAmount       float64         `json:"loanAmount,omitempty"`
	DownPayment      float64         `json:"downPayment,omitempty"`
	InterestRate     float64         `json:"interestRate,omitempty"`
	Tenure           int             `json:"tenure,omitempty"`
	MonthlyPayment   float64         `json:"monthlyPayment,omitempty"`
	Status           string          `json:"status"`
	CurrentPhaseType string          `json:"currentPhaseType,omitempty"`
	Phases           []Phase         `json:"phases,omitempty"`
	ApplicationDate  time.Time       `json:"applicationDate"`
	ApprovalDate     *time.Time      `json:"approvalDate,omitempty"`
	Timestamps
}

// PhaseByType returns the first phase with the given type, or nil.
func (l *Loan) PhaseByType(phaseType string) *Phase {
	for i := range l.Phases {
		if l.Phases[i].Type == phaseType {
			return &l.Phases[i]
		}
	}
	return nil
}
