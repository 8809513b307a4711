// Package auth emette i token che il resto dell'API richiede.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/gestionale-hr/personale-api/internal/application/dto"
	"github.com/gestionale-hr/personale-api/internal/domain"
	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	"github.com/gestionale-hr/personale-api/internal/domain/repository"
	"github.com/gestionale-hr/personale-api/pkg/jwt"
)

// JWTConfig parametri per la generazione dei token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso d'uso di autenticazione: login con email e password.
type AuthUseCase struct {
	users        repository.UserRepository
	operatori    repository.OperatoreRepository
	responsabili repository.ResponsabileRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase costruisce il caso d'uso.
func NewAuthUseCase(users repository.UserRepository, operatori repository.OperatoreRepository, responsabili repository.ResponsabileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, operatori: operatori, responsabili: responsabili, jwtCfg: jwtCfg}
}

// Login verifica le credenziali e genera il JWT.
//
// Il claim user_id identifica il soggetto su cui la politica di
// autorizzazione ragiona: per OPERATORE e RESPONSABILE è l'id del profilo
// anagrafico (è quello confrontato da filtri e associazioni), per i ruoli
// amministrativi è l'id della riga users.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrWrongCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrWrongCredentials
	}

	subject := user.ID
	switch user.Role {
	case entity.RoleOperatore:
		op, err := uc.operatori.GetByEmail(ctx, user.Email)
		if err != nil {
			return nil, err
		}
		if op != nil {
			subject = op.ID
		}
	case entity.RoleResponsabile:
		r, err := uc.responsabili.GetByEmail(ctx, user.Email)
		if err != nil {
			return nil, err
		}
		if r != nil {
			subject = r.ID
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, subject, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}
