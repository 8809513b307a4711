// Package testutil fornisce implementazioni in memoria delle porte di
// persistenza, per testare casi d'uso e handler senza un PostgreSQL reale.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/gestionale-hr/personale-api/internal/domain"
	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	"github.com/gestionale-hr/personale-api/internal/domain/repository"
)

// Store stato condiviso dei repository in memoria.
type Store struct {
	mu           sync.Mutex
	users        map[string]*entity.User
	operatori    map[string]*entity.Operatore
	responsabili map[string]*entity.Responsabile
	assoc        map[[2]string]bool
}

// NewStore costruisce uno store vuoto.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]*entity.User),
		operatori:    make(map[string]*entity.Operatore),
		responsabili: make(map[string]*entity.Responsabile),
		assoc:        make(map[[2]string]bool),
	}
}

// Users porta UserRepository sullo store.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Operatori porta OperatoreRepository sullo store.
func (s *Store) Operatori() repository.OperatoreRepository { return &operatoreRepo{s} }

// Responsabili porta ResponsabileRepository sullo store.
func (s *Store) Responsabili() repository.ResponsabileRepository { return &responsabileRepo{s} }

// Associazioni porta AssociazioneRepository sullo store.
func (s *Store) Associazioni() repository.AssociazioneRepository { return &assocRepo{s} }

// Tx è un TxRunner che esegue la callback direttamente sulle porte dello
// store: nessuna atomicità reale, sufficiente per i test dei casi d'uso.
func (s *Store) Tx() *TxRunner { return &TxRunner{s: s} }

// CountUsers numero di identità di accesso persistite.
func (s *Store) CountUsers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// CountOperatori numero di profili operatore persistiti.
func (s *Store) CountOperatori() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.operatori)
}

// CountResponsabili numero di profili responsabile persistiti.
func (s *Store) CountResponsabili() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.responsabili)
}

// Associa registra un legame responsabile-operatore preesistente.
func (s *Store) Associa(idResponsabile, idOperatore string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assoc[[2]string{idResponsabile, idOperatore}] = true
}

// SeedUser inserisce direttamente un'identità di accesso.
func (s *Store) SeedUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// SeedOperatore inserisce direttamente un profilo operatore.
func (s *Store) SeedOperatore(op *entity.Operatore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operatori[op.ID] = op
}

// SeedResponsabile inserisce direttamente un profilo responsabile.
func (s *Store) SeedResponsabile(r *entity.Responsabile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responsabili[r.ID] = r
}

// TxRunner finto: esegue fn con le porte dello store.
type TxRunner struct {
	s *Store
}

// Run implementa usecase.TxRunner senza transazione reale.
func (t *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	operatori repository.OperatoreRepository,
	responsabili repository.ResponsabileRepository,
	assoc repository.AssociazioneRepository,
) error) error {
	return fn(t.s.Users(), t.s.Operatori(), t.s.Responsabili(), t.s.Associazioni())
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailInUse // stesso esito dell'indice unico
		}
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) UpdateEmail(_ context.Context, oldEmail, newEmail string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == newEmail {
			return domain.ErrEmailInUse // stesso esito dell'indice unico
		}
	}
	for _, u := range r.s.users {
		if u.Email == oldEmail {
			u.Email = newEmail
		}
	}
	return nil
}

func (r *userRepo) DeleteByEmail(_ context.Context, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, u := range r.s.users {
		if u.Email == email {
			delete(r.s.users, id)
		}
	}
	return nil
}

type operatoreRepo struct{ s *Store }

func (r *operatoreRepo) Create(_ context.Context, op *entity.Operatore) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *op
	r.s.operatori[op.ID] = &cp
	return nil
}

func (r *operatoreRepo) GetByID(_ context.Context, id string) (*entity.Operatore, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if op, ok := r.s.operatori[id]; ok {
		cp := *op
		return &cp, nil
	}
	return nil, nil
}

func (r *operatoreRepo) GetByEmail(_ context.Context, email string) (*entity.Operatore, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, op := range r.s.operatori {
		if op.Email == email {
			cp := *op
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *operatoreRepo) ListAll(_ context.Context) ([]*entity.Operatore, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sortedLocked(func(*entity.Operatore) bool { return true }), nil
}

func (r *operatoreRepo) ListByResponsabile(_ context.Context, idResponsabile string) ([]*entity.Operatore, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sortedLocked(func(op *entity.Operatore) bool {
		return r.s.assoc[[2]string{idResponsabile, op.ID}]
	}), nil
}

func (r *operatoreRepo) ListByID(_ context.Context, id string) ([]*entity.Operatore, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sortedLocked(func(op *entity.Operatore) bool { return op.ID == id }), nil
}

func (r *operatoreRepo) Update(_ context.Context, op *entity.Operatore) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *op
	r.s.operatori[op.ID] = &cp
	return nil
}

func (r *operatoreRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.operatori, id)
	for key := range r.s.assoc {
		if key[1] == id {
			delete(r.s.assoc, key)
		}
	}
	return nil
}

func (r *operatoreRepo) sortedLocked(keep func(*entity.Operatore) bool) []*entity.Operatore {
	out := make([]*entity.Operatore, 0)
	for _, op := range r.s.operatori {
		if keep(op) {
			cp := *op
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cognome < out[j].Cognome })
	return out
}

type responsabileRepo struct{ s *Store }

func (r *responsabileRepo) Create(_ context.Context, resp *entity.Responsabile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *resp
	r.s.responsabili[resp.ID] = &cp
	return nil
}

func (r *responsabileRepo) GetByID(_ context.Context, id string) (*entity.Responsabile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if resp, ok := r.s.responsabili[id]; ok {
		cp := *resp
		return &cp, nil
	}
	return nil, nil
}

func (r *responsabileRepo) GetByEmail(_ context.Context, email string) (*entity.Responsabile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, resp := range r.s.responsabili {
		if resp.Email == email {
			cp := *resp
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *responsabileRepo) ListAll(_ context.Context) ([]*entity.Responsabile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Responsabile, 0, len(r.s.responsabili))
	for _, resp := range r.s.responsabili {
		cp := *resp
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cognome < out[j].Cognome })
	return out, nil
}

func (r *responsabileRepo) Update(_ context.Context, resp *entity.Responsabile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *resp
	r.s.responsabili[resp.ID] = &cp
	return nil
}

func (r *responsabileRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.responsabili, id)
	for key := range r.s.assoc {
		if key[0] == id {
			delete(r.s.assoc, key)
		}
	}
	return nil
}

type assocRepo struct{ s *Store }

func (r *assocRepo) Create(_ context.Context, idResponsabile, idOperatore string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.assoc[[2]string{idResponsabile, idOperatore}] = true
	return nil
}

func (r *assocRepo) Exists(_ context.Context, idResponsabile, idOperatore string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.assoc[[2]string{idResponsabile, idOperatore}], nil
}
