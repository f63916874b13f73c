package derive

import "github.com/simp-lee/loanadmin/internal/domain"

// StatusBadgeClass maps a loan status to the CSS class of its badge.
func StatusBadgeClass(status string) string {
	switch status {
	case domain.LoanStatusApproved:
		return "badge badge-green"
	case domain.LoanStatusPending:
		return "badge badge-yellow"
	case domain.LoanStatusRejected:
		return "badge badge-red"
	default:
		return "badge badge-gray"
	}
}

// DealerStatusBadgeClass maps a dealer status to the CSS class of its badge.
func DealerStatusBadgeClass(status string) string {
	switch status {
	case domain.DealerStatusActive:
		return "badge badge-green"
	case domain.DealerStatusPending:
		return "badge badge-yellow"
	case domain.DealerStatusBlocked:
		return "badge badge-red"
	default:
		return "badge badge-gray"
	}
}

// StatusLabel renders a status value for display ("pending" -> "Pending").
func StatusLabel(status string) string {
	if status == "" {
		return PlaceholderDash
	}
	return Capitalize(status)
}

// DealerPhone resolves a dealer's contact phone, falling back to "N/A".
func DealerPhone(d *domain.Dealer) string {
	if d == nil || d.ContactPhone == "" {
		return PlaceholderNA
	}
	return d.ContactPhone
}

// DealerCountry resolves a dealer's country, falling back to "KSA".
func DealerCountry(d *domain.Dealer) string {
	if d == nil || d.Address == nil || d.Address.Country == "" {
		return DefaultCountry
	}
	return d.Address.Country
}

// ActiveLabel renders an isActive flag as the tab label it belongs to.
func ActiveLabel(isActive bool) string {
	if isActive {
		return "Active"
	}
	return "Blocked"
}
