package models

// Record is a single financial entry owned by one user.
type Record struct {
	ID          string  `json:"_id"`
	UserID      int     `json:"idUsuario"`
	OwnerName   string  `json:"nome"`
	Amount      float64 `json:"valor"`
	Description string  `json:"descricao"`
	Date        string  `json:"data"` // DD/MM
}
