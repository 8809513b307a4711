package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestionale-hr/personale-api/internal/application/dto"
	"github.com/gestionale-hr/personale-api/internal/domain"
	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	"github.com/gestionale-hr/personale-api/internal/domain/repository"
)

// provisionParams descrive il profilo da creare insieme alla sua identità di accesso.
type provisionParams struct {
	in   dto.CreateProfiloRequest
	role entity.Role // OPERATORE o RESPONSABILE: decide la tabella del profilo
	// associaA, se non vuoto, è l'id del responsabile a cui associare il nuovo
	// operatore (auto-associazione quando il chiamante è un RESPONSABILE).
	associaA   string
	bcryptCost int
}

// provision crea identità di accesso e profilo in un'unica transazione.
//
// La password effettiva è quella fornita dal chiamante, oppure una generata
// di GeneratedPasswordLen caratteri. L'hash avviene fuori dalla transazione
// (bcrypt è deliberatamente lento, inutile tenere aperta la tx). Il controllo
// di unicità dell'email avviene dentro la transazione e l'indice unico su
// users.email resta l'autorità finale: una violazione concorrente viene
// comunque tradotta in ErrEmailInUse dal repository.
func provision(ctx context.Context, tx TxRunner, p provisionParams) (*dto.CreatedProfiloResponse, error) {
	password := p.in.Password
	generated := ""
	if password == "" {
		var err error
		if password, err = generatePassword(); err != nil {
			return nil, err
		}
		generated = password
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.bcryptCost)
	if err != nil {
		return nil, err
	}

	var resp *dto.CreatedProfiloResponse
	err = tx.Run(ctx, func(
		users repository.UserRepository,
		operatori repository.OperatoreRepository,
		responsabili repository.ResponsabileRepository,
		assoc repository.AssociazioneRepository,
	) error {
		existing, err := users.GetByEmail(ctx, p.in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailInUse
		}

		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        p.in.Email,
			PasswordHash: string(hash),
			Role:         p.role,
			CreatedAt:    now,
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}

		profiloID := uuid.New().String()
		switch p.role {
		case entity.RoleOperatore:
			op := &entity.Operatore{
				ID:        profiloID,
				Nome:      p.in.Nome,
				Cognome:   p.in.Cognome,
				Email:     p.in.Email,
				CreatedAt: now,
			}
			if err := operatori.Create(ctx, op); err != nil {
				return err
			}
			if p.associaA != "" {
				if err := assoc.Create(ctx, p.associaA, op.ID); err != nil {
					return err
				}
			}
		case entity.RoleResponsabile:
			r := &entity.Responsabile{
				ID:        profiloID,
				Nome:      p.in.Nome,
				Cognome:   p.in.Cognome,
				Email:     p.in.Email,
				CreatedAt: now,
			}
			if err := responsabili.Create(ctx, r); err != nil {
				return err
			}
		default:
			return domain.ErrInvalidInput
		}

		resp = &dto.CreatedProfiloResponse{
			ProfiloResponse: dto.ProfiloResponse{
				ID:        profiloID,
				Nome:      p.in.Nome,
				Cognome:   p.in.Cognome,
				Email:     p.in.Email,
				CreatedAt: now,
			},
			UserID:            user.ID,
			GeneratedPassword: generated,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			return nil, domain.ErrEmailInUse
		}
		return nil, err
	}
	return resp, nil
}
