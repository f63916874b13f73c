package domain

import "time"

// DealerStats is the dealer slice of the dashboard stats payload.
type DealerStats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Pending int `json:"pending"`
	Blocked int `json:"blocked"`
}

// UserStats is the user slice of the dashboard stats payload.
type UserStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// BankStats is the bank slice of the dashboard stats payload.
type BankStats struct {
	Total int `json:"total"`
}

// LoanStats is the loan slice of the dashboard stats payload.
type LoanStats struct {
	Total       int     `json:"total"`
	Approved    int     `json:"approved"`
	Pending     int     `json:"pending"`
	Rejected    int     `json:"rejected"`
	TotalAmount float64 `json:"totalAmount"`
}

// PerformancePoint is one monthly bucket of the loan performance series.
type PerformancePoint struct {
	Period struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	} `json:"_id"`
	Count    int     `json:"count"`
	Approved int     `json:"approved"`
	Amount   float64 `json:"amount"`
}

// Stats is the dashboard stats payload.
type Stats struct {
	Dealers     DealerStats        `json:"dealers"`
	Users       UserStats          `json:"users"`
	Banks       BankStats          `json:"banks"`
	Loans       LoanStats          `json:"loans"`
	Performance []PerformancePoint `json:"performance,omitempty"`
}

// ActivityLoan is a recent-loan entry in the activity feed.
type ActivityLoan struct {
	ID         string    `json:"_id"`
	LoanNumber string    `json:"loanNumber"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ActivityDealer is a recent-dealer entry in the activity feed.
type ActivityDealer struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Activity is the dashboard recent-activity payload.
type Activity struct {
	RecentLoans   []ActivityLoan   `json:"recentLoans"`
	RecentDealers []ActivityDealer `json:"recentDealers"`
}
