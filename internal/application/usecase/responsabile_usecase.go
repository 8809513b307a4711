package usecase

import (
	"context"
	"time"

	"github.com/gestionale-hr/personale-api/internal/application/authz"
	"github.com/gestionale-hr/personale-api/internal/application/dto"
	"github.com/gestionale-hr/personale-api/internal/application/validate"
	"github.com/gestionale-hr/personale-api/internal/domain"
	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	"github.com/gestionale-hr/personale-api/internal/domain/repository"
)

// ResponsabileUseCase casi d'uso CRUD per i responsabili.
// Ogni operazione è riservata ad ADMIN e AMMINISTRATORE.
type ResponsabileUseCase struct {
	tx           TxRunner
	responsabili repository.ResponsabileRepository
	bcryptCost   int
}

// NewResponsabileUseCase costruisce il caso d'uso.
func NewResponsabileUseCase(tx TxRunner, responsabili repository.ResponsabileRepository, bcryptCost int) *ResponsabileUseCase {
	return &ResponsabileUseCase{tx: tx, responsabili: responsabili, bcryptCost: bcryptCost}
}

// List restituisce tutti i responsabili, per cognome ascendente.
func (uc *ResponsabileUseCase) List(ctx context.Context, caller authz.Caller) ([]dto.ProfiloResponse, error) {
	if authz.Decide(caller, authz.ListResponsabili) != authz.Allow {
		return nil, domain.ErrForbidden
	}
	rows, err := uc.responsabili.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfiloResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProfilo(r.ID, r.Nome, r.Cognome, r.Email, r.CreatedAt))
	}
	return out, nil
}

// Get restituisce un singolo responsabile.
func (uc *ResponsabileUseCase) Get(ctx context.Context, caller authz.Caller, id string) (*dto.ProfiloResponse, error) {
	if authz.Decide(caller, authz.ReadResponsabile) != authz.Allow {
		return nil, domain.ErrForbidden
	}
	r, err := uc.responsabili.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	p := toProfilo(r.ID, r.Nome, r.Cognome, r.Email, r.CreatedAt)
	return &p, nil
}

// Create valida l'input e provisiona responsabile più identità di accesso,
// stesso flusso degli operatori senza il passo di associazione.
func (uc *ResponsabileUseCase) Create(ctx context.Context, caller authz.Caller, in dto.CreateProfiloRequest) (*dto.CreatedProfiloResponse, error) {
	if authz.Decide(caller, authz.CreateResponsabile) != authz.Allow {
		return nil, domain.ErrForbidden
	}
	if errs := validate.CreateProfilo(in); len(errs) > 0 {
		return nil, errs
	}
	return provision(ctx, uc.tx, provisionParams{
		in:         in,
		role:       entity.RoleResponsabile,
		bcryptCost: uc.bcryptCost,
	})
}

// Update valida e aggiorna l'anagrafica di un responsabile esistente.
// Come per gli operatori, un cambio di email sposta anche l'identità di
// accesso nella stessa transazione.
func (uc *ResponsabileUseCase) Update(ctx context.Context, caller authz.Caller, id string, in dto.UpdateProfiloRequest) (*dto.ProfiloResponse, error) {
	if authz.Decide(caller, authz.UpdateResponsabile) != authz.Allow {
		return nil, domain.ErrForbidden
	}
	if errs := validate.UpdateProfilo(in); len(errs) > 0 {
		return nil, errs
	}
	var p dto.ProfiloResponse
	err := uc.tx.Run(ctx, func(
		users repository.UserRepository,
		_ repository.OperatoreRepository,
		responsabili repository.ResponsabileRepository,
		_ repository.AssociazioneRepository,
	) error {
		r, err := responsabili.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.ErrNotFound
		}
		if in.Email != r.Email {
			existing, err := users.GetByEmail(ctx, in.Email)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.ErrEmailInUse
			}
			if err := users.UpdateEmail(ctx, r.Email, in.Email); err != nil {
				return err
			}
		}
		r.Nome = in.Nome
		r.Cognome = in.Cognome
		r.Email = in.Email
		if err := responsabili.Update(ctx, r); err != nil {
			return err
		}
		p = toProfilo(r.ID, r.Nome, r.Cognome, r.Email, r.CreatedAt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete elimina il responsabile e la sua identità di accesso nella stessa
// transazione; le associazioni cadono per vincolo referenziale.
func (uc *ResponsabileUseCase) Delete(ctx context.Context, caller authz.Caller, id string) error {
	if authz.Decide(caller, authz.DeleteResponsabile) != authz.Allow {
		return domain.ErrForbidden
	}
	r, err := uc.responsabili.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(
		users repository.UserRepository,
		_ repository.OperatoreRepository,
		responsabili repository.ResponsabileRepository,
		_ repository.AssociazioneRepository,
	) error {
		if err := responsabili.Delete(ctx, r.ID); err != nil {
			return err
		}
		return users.DeleteByEmail(ctx, r.Email)
	})
}

func toProfilo(id, nome, cognome, email string, createdAt time.Time) dto.ProfiloResponse {
	return dto.ProfiloResponse{
		ID:        id,
		Nome:      nome,
		Cognome:   cognome,
		Email:     email,
		CreatedAt: createdAt,
	}
}
