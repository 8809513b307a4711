// Package validate contiene i controlli di forma sui dati anagrafici in ingresso.
// Gli errori sono raccolti campo per campo, mai solo come testo libero.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gestionale-hr/personale-api/internal/application/dto"
)

// PasswordMinLen lunghezza minima di una password fornita dal chiamante.
const PasswordMinLen = 6

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Errors lista di errori di campo; implementa error per poter risalire
// dal layer HTTP al dettaglio della validazione fallita.
type Errors []dto.FieldError

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fmt.Sprintf("dati non validi: %s", strings.Join(fields, ", "))
}

// CreateProfilo valida l'input di creazione. La password è opzionale;
// se presente deve avere almeno PasswordMinLen caratteri.
func CreateProfilo(in dto.CreateProfiloRequest) Errors {
	errs := anagrafica(in.Nome, in.Cognome, in.Email)
	if in.Password != "" && len(in.Password) < PasswordMinLen {
		errs = append(errs, dto.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("La password deve contenere almeno %d caratteri", PasswordMinLen),
		})
	}
	return errs
}

// UpdateProfilo valida l'input di aggiornamento (stessa anagrafica, senza password).
func UpdateProfilo(in dto.UpdateProfiloRequest) Errors {
	return anagrafica(in.Nome, in.Cognome, in.Email)
}

func anagrafica(nome, cognome, email string) Errors {
	var errs Errors
	if strings.TrimSpace(nome) == "" {
		errs = append(errs, dto.FieldError{Field: "nome", Message: "Il nome è obbligatorio"})
	}
	if strings.TrimSpace(cognome) == "" {
		errs = append(errs, dto.FieldError{Field: "cognome", Message: "Il cognome è obbligatorio"})
	}
	if !ValidEmail(email) {
		errs = append(errs, dto.FieldError{Field: "email", Message: "Email non valida"})
	}
	return errs
}

// ValidEmail verifica che l'email rispetti la grammatica standard.
func ValidEmail(email string) bool {
	if email == "" || strings.Contains(email, "..") {
		return false
	}
	return emailRegexp.MatchString(email)
}
