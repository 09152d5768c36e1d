package dto

// OperadorResponse dados do operador autenticado.
type OperadorResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Role string `json:"role"`
}
