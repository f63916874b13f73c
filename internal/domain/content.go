package domain

// CarType is a site-content vehicle category.
type CarType struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	Order       int    `json:"order"`
	Timestamps
}

// FAQ is a site-content question/answer entry.
type FAQ struct {
	ID       string `json:"_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
	IsActive bool   `json:"isActive"`
	Order    int    `json:"order"`
	Timestamps
}
