package derive

import (
	"github.com/simp-lee/loanadmin/internal/domain"
)

// LoanAmount resolves a loan's amount through the ordered fallback chain:
//
//  1. the top-level loanAmount field
//  2. the bank_offers phase payload, selectedOffer.totalAmount
//  3. the dealership_pricing phase payload, salePrice
//
// The second return is false when no location holds a positive amount.
func LoanAmount(l *domain.Loan) (float64, bool) {
	if l == nil {
		return 0, false
	}
	if l.LoanAmount > 0 {
		return l.LoanAmount, true
	}
	if v, ok := phaseNumber(l.PhaseByType(domain.PhaseBankOffers), "selectedOffer", "totalAmount"); ok {
		return v, true
	}
	if v, ok := phaseNumber(l.PhaseByType(domain.PhaseDealershipPricing), "salePrice"); ok {
		return v, true
	}
	return 0, false
}

// LoanAmountLabel renders the amount line of a loan card ("Amount: SAR 250,000"),
// or the empty string when no amount can be derived.
func LoanAmountLabel(l *domain.Loan) string {
	amount, ok := LoanAmount(l)
	if !ok {
		return ""
	}
	return "Amount: SAR " + FormatAmount(amount)
}

// CustomerName resolves the applicant's name: the embedded customer object
// first, then the client_personal_info phase payload. Falls back to "Unknown".
func CustomerName(l *domain.Loan) string {
	if l == nil {
		return PlaceholderUnknown
	}
	if l.Customer != nil && l.Customer.Name != "" {
		return l.Customer.Name
	}
	if v, ok := phaseString(l.PhaseByType(domain.PhaseClientPersonalInfo), "name"); ok {
		return v
	}
	return PlaceholderUnknown
}

// DealershipName resolves the selling dealership's name: the embedded
// dealership object first, then the dealership_selection phase payload.
// Falls back to the empty string; the list card omits the dealership chip
// entirely when no name is known.
func DealershipName(l *domain.Loan) string {
	if l == nil {
		return ""
	}
	if l.Dealership != nil && l.Dealership.Name != "" {
		return l.Dealership.Name
	}
	if v, ok := phaseString(l.PhaseByType(domain.PhaseDealershipSelection), "dealership", "name"); ok {
		return v
	}
	return ""
}

// BankName resolves the lending bank's name, falling back to "Unknown Bank".
func BankName(l *domain.Loan) string {
	if l == nil || l.Bank == nil || l.Bank.Name == "" {
		return UnknownBank
	}
	return l.Bank.Name
}

// VehicleTitle renders the "<year> <make> <model>" heading of a loan card,
// or "-" when the loan carries no vehicle.
func VehicleTitle(l *domain.Loan) string {
	if l == nil || l.Vehicle == nil {
		return PlaceholderDash
	}
	title := ""
	if l.Vehicle.Year > 0 {
		title = itoa(l.Vehicle.Year) + " "
	}
	return title + l.Vehicle.Make + " " + l.Vehicle.Model
}

// phaseValue walks the phase payload along path, returning the raw value.
func phaseValue(p *domain.Phase, path ...string) (any, bool) {
	if p == nil || p.Data == nil {
		return nil, false
	}
	var cur any = map[string]any(p.Data)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// phaseNumber reads a positive numeric value from the phase payload.
// encoding/json decodes untyped numbers as float64.
func phaseNumber(p *domain.Phase, path ...string) (float64, bool) {
	v, ok := phaseValue(p, path...)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || f <= 0 {
		return 0, false
	}
	return f, true
}

// phaseString reads a non-empty string value from the phase payload.
func phaseString(p *domain.Phase, path ...string) (string, bool) {
	v, ok := phaseValue(p, path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
