package dto

// FieldError errore di validazione su un singolo campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse corpo di errore HTTP: messaggio leggibile più, per gli errori
// di validazione, il dettaglio campo per campo.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// MessageResponse corpo di conferma (es. eliminazione riuscita).
type MessageResponse struct {
	Message string `json:"message"`
}
