package usecase

import (
	"context"

	"github.com/gestionale-hr/personale-api/internal/application/authz"
	"github.com/gestionale-hr/personale-api/internal/application/dto"
	"github.com/gestionale-hr/personale-api/internal/application/validate"
	"github.com/gestionale-hr/personale-api/internal/domain"
	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	"github.com/gestionale-hr/personale-api/internal/domain/repository"
)

// OperatoreUseCase casi d'uso CRUD per gli operatori, con filtro di
// visibilità per ruolo applicato a ogni operazione.
type OperatoreUseCase struct {
	tx         TxRunner
	operatori  repository.OperatoreRepository
	assoc      repository.AssociazioneRepository
	bcryptCost int
}

// NewOperatoreUseCase costruisce il caso d'uso.
func NewOperatoreUseCase(tx TxRunner, operatori repository.OperatoreRepository, assoc repository.AssociazioneRepository, bcryptCost int) *OperatoreUseCase {
	return &OperatoreUseCase{tx: tx, operatori: operatori, assoc: assoc, bcryptCost: bcryptCost}
}

// List restituisce gli operatori visibili al chiamante, per cognome ascendente.
// Nessun risultato è una lista vuota, non un errore.
func (uc *OperatoreUseCase) List(ctx context.Context, caller authz.Caller) ([]dto.ProfiloResponse, error) {
	var (
		rows []*entity.Operatore
		err  error
	)
	switch authz.Decide(caller, authz.ListOperatori) {
	case authz.Allow:
		rows, err = uc.operatori.ListAll(ctx)
	case authz.AllowAssociated:
		rows, err = uc.operatori.ListByResponsabile(ctx, caller.UserID)
	case authz.AllowSelf:
		rows, err = uc.operatori.ListByID(ctx, caller.UserID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfiloResponse, 0, len(rows))
	for _, op := range rows {
		out = append(out, toProfilo(op.ID, op.Nome, op.Cognome, op.Email, op.CreatedAt))
	}
	return out, nil
}

// Get restituisce un singolo operatore, applicando lo stesso filtro del listato.
func (uc *OperatoreUseCase) Get(ctx context.Context, caller authz.Caller, id string) (*dto.ProfiloResponse, error) {
	if err := uc.scoped(ctx, caller, authz.ReadOperatore, id); err != nil {
		return nil, err
	}
	op, err := uc.operatori.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	p := toProfilo(op.ID, op.Nome, op.Cognome, op.Email, op.CreatedAt)
	return &p, nil
}

// Create valida l'input e provisiona operatore più identità di accesso.
// Se il chiamante è un RESPONSABILE, il nuovo operatore gli viene associato.
func (uc *OperatoreUseCase) Create(ctx context.Context, caller authz.Caller, in dto.CreateProfiloRequest) (*dto.CreatedProfiloResponse, error) {
	if authz.Decide(caller, authz.CreateOperatore) != authz.Allow {
		return nil, domain.ErrForbidden
	}
	if errs := validate.CreateProfilo(in); len(errs) > 0 {
		return nil, errs
	}
	associaA := ""
	if caller.Role == entity.RoleResponsabile {
		associaA = caller.UserID
	}
	return provision(ctx, uc.tx, provisionParams{
		in:         in,
		role:       entity.RoleOperatore,
		associaA:   associaA,
		bcryptCost: uc.bcryptCost,
	})
}

// Update valida e aggiorna l'anagrafica di un operatore esistente.
// Un cambio di email sposta nella stessa transazione anche l'identità di
// accesso: è l'email a legare profilo e utente, e un aggiornamento non deve
// spezzare quel legame né scavalcare l'unicità delle email di accesso.
func (uc *OperatoreUseCase) Update(ctx context.Context, caller authz.Caller, id string, in dto.UpdateProfiloRequest) (*dto.ProfiloResponse, error) {
	if err := uc.scoped(ctx, caller, authz.UpdateOperatore, id); err != nil {
		return nil, err
	}
	if errs := validate.UpdateProfilo(in); len(errs) > 0 {
		return nil, errs
	}
	var p dto.ProfiloResponse
	err := uc.tx.Run(ctx, func(
		users repository.UserRepository,
		operatori repository.OperatoreRepository,
		_ repository.ResponsabileRepository,
		_ repository.AssociazioneRepository,
	) error {
		op, err := operatori.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrNotFound
		}
		if in.Email != op.Email {
			existing, err := users.GetByEmail(ctx, in.Email)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.ErrEmailInUse
			}
			if err := users.UpdateEmail(ctx, op.Email, in.Email); err != nil {
				return err
			}
		}
		op.Nome = in.Nome
		op.Cognome = in.Cognome
		op.Email = in.Email
		if err := operatori.Update(ctx, op); err != nil {
			return err
		}
		p = toProfilo(op.ID, op.Nome, op.Cognome, op.Email, op.CreatedAt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete elimina l'operatore e, nella stessa transazione, la sua identità di
// accesso: un profilo rimosso non lascia login orfani.
func (uc *OperatoreUseCase) Delete(ctx context.Context, caller authz.Caller, id string) error {
	if err := uc.scoped(ctx, caller, authz.DeleteOperatore, id); err != nil {
		return err
	}
	op, err := uc.operatori.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if op == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(
		users repository.UserRepository,
		operatori repository.OperatoreRepository,
		_ repository.ResponsabileRepository,
		_ repository.AssociazioneRepository,
	) error {
		if err := operatori.Delete(ctx, op.ID); err != nil {
			return err
		}
		return users.DeleteByEmail(ctx, op.Email)
	})
}

// scoped traduce la decisione della politica in un esito per il singolo id:
// un RESPONSABILE agisce solo sugli operatori associati, un OPERATORE solo su se stesso.
func (uc *OperatoreUseCase) scoped(ctx context.Context, caller authz.Caller, az authz.Azione, id string) error {
	switch authz.Decide(caller, az) {
	case authz.Allow:
		return nil
	case authz.AllowSelf:
		if id != caller.UserID {
			return domain.ErrForbidden
		}
		return nil
	case authz.AllowAssociated:
		ok, err := uc.assoc.Exists(ctx, caller.UserID, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrForbidden
		}
		return nil
	default:
		return domain.ErrForbidden
	}
}
