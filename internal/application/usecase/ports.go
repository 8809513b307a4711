package usecase

import (
	"context"

	"github.com/gestionale-hr/personale-api/internal/domain/repository"
)

// TxRunner esegue una callback dentro una singola transazione, con le porte
// di persistenza legate alla transazione stessa. Il provisioning delle
// credenziali e l'eliminazione a cascata dei profili passano da qui: il
// controllo di unicità dell'email e le due insert non devono mai essere
// visibili a metà.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		operatori repository.OperatoreRepository,
		responsabili repository.ResponsabileRepository,
		assoc repository.AssociazioneRepository,
	) error) error
}
