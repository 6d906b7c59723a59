package dto

import "spending-tracker/internal/models"

// SpentRequest is the body of POST /spent and POST /budget. Amount is a
// decimal number of dollars. Category is optional; a missing category
// is resolved to Other by the handler, while an unknown one fails
// decoding. POST /budget ignores the category if present.
type SpentRequest struct {
	Amount   float64          `json:"amount"`
	Category *models.Category `json:"category,omitempty"`
}

// SpentResponse reports the balance remaining after an expenditure,
// rendered in display form.
type SpentResponse struct {
	Total string `json:"total"`
}

// SnapshotResponse is the full aggregate view returned by GET /spent,
// POST /budget and GET /reset.
type SnapshotResponse struct {
	Budget       string               `json:"budget"`
	Total        string               `json:"total"`
	Transactions []models.Transaction `json:"transactions"`
}
