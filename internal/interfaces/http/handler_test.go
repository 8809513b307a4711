package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestionale-hr/personale-api/internal/application/auth"
	"github.com/gestionale-hr/personale-api/internal/application/dto"
	"github.com/gestionale-hr/personale-api/internal/application/usecase"
	"github.com/gestionale-hr/personale-api/internal/domain/entity"
	apphttp "github.com/gestionale-hr/personale-api/internal/interfaces/http"
	"github.com/gestionale-hr/personale-api/internal/testutil"
	"github.com/gestionale-hr/personale-api/pkg/logger"
	pkgjwt "github.com/gestionale-hr/personale-api/pkg/jwt"
)

// buildTestApp monta il router completo sopra lo store in memoria.
func buildTestApp(t *testing.T) (*fiber.App, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	operatoreUC := usecase.NewOperatoreUseCase(store.Tx(), store.Operatori(), store.Associazioni(), bcrypt.MinCost)
	responsabileUC := usecase.NewResponsabileUseCase(store.Tx(), store.Responsabili(), bcrypt.MinCost)
	authUC := auth.NewAuthUseCase(store.Users(), store.Operatori(), store.Responsabili(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		OperatoreUC:    operatoreUC,
		ResponsabileUC: responsabileUC,
		AuthUC:         authUC,
		JWTSecret:      testJWTSecret,
		Log:            log,
	})
	return app, store
}

// bearerFor genera direttamente un token per il soggetto indicato, senza
// passare dal login.
func bearerFor(t *testing.T, role entity.Role, subjectID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, subjectID, string(role), testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// seedLogin registra un'identità di accesso con password nota.
func seedLogin(t *testing.T, store *testutil.Store, email, password string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	store.SeedUser(u)
	return u
}

func seedOperatoreHTTP(t *testing.T, store *testutil.Store, nome, cognome, email string) *entity.Operatore {
	t.Helper()
	op := &entity.Operatore{
		ID:        uuid.NewString(),
		Nome:      nome,
		Cognome:   cognome,
		Email:     email,
		CreatedAt: time.Now(),
	}
	store.SeedOperatore(op)
	return op
}

func TestLogin_CredenzialiValide(t *testing.T) {
	app, store := buildTestApp(t)
	seedLogin(t, store, "admin@azienda.it", "segretissima", entity.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "admin@azienda.it",
		Password: "segretissima",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.LoginResponse
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "admin@azienda.it", body.User.Email)
	assert.Equal(t, "ADMIN", body.User.Role)

	// Il token emesso deve essere accettato dalle rotte protette.
	listResp := doJSON(t, app, http.MethodGet, "/api/operatori", "Bearer "+body.Token, nil)
	defer listResp.Body.Close()
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
}

func TestLogin_PasswordErrata(t *testing.T) {
	app, store := buildTestApp(t)
	seedLogin(t, store, "admin@azienda.it", "segretissima", entity.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "admin@azienda.it",
		Password: "sbagliata",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Credenziali non valide", body.Message)
}

func TestLogin_UtenteInesistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "fantasma@azienda.it",
		Password: "qualunque",
	})
	defer resp.Body.Close()
	// Stessa risposta della password errata: nessun indizio sull'esistenza.
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_TokenResponsabilePortaIDProfilo(t *testing.T) {
	app, store := buildTestApp(t)
	seedLogin(t, store, "rossi@azienda.it", "password1", entity.RoleResponsabile)
	profilo := &entity.Responsabile{
		ID:        uuid.NewString(),
		Nome:      "Mario",
		Cognome:   "Rossi",
		Email:     "rossi@azienda.it",
		CreatedAt: time.Now(),
	}
	store.SeedResponsabile(profilo)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "rossi@azienda.it",
		Password: "password1",
	})
	var body dto.LoginResponse
	decodeBody(t, resp, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	userID, role, err := pkgjwt.Parse(testJWTSecret, body.Token)
	require.NoError(t, err)
	assert.Equal(t, profilo.ID, userID, "il claim deve portare l'id del profilo, non dell'identità di accesso")
	assert.Equal(t, "RESPONSABILE", role)
}

func TestResponsabili_SoloAmministratori(t *testing.T) {
	app, _ := buildTestApp(t)

	for _, role := range []entity.Role{entity.RoleResponsabile, entity.RoleOperatore} {
		resp := doJSON(t, app, http.MethodGet, "/api/responsabili", bearerFor(t, role, uuid.NewString()), nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"il ruolo %s non deve vedere i responsabili", role)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/responsabili", bearerFor(t, entity.RoleAmministratore, uuid.NewString()), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOperatori_ListFiltrataPerRuolo(t *testing.T) {
	app, store := buildTestApp(t)
	opA := seedOperatoreHTTP(t, store, "Anna", "Alfieri", "alfieri@azienda.it")
	opB := seedOperatoreHTTP(t, store, "Bruno", "Bianchi", "bianchi@azienda.it")
	seedOperatoreHTTP(t, store, "Carla", "Conti", "conti@azienda.it")

	respID := uuid.NewString()
	store.Associa(respID, opA.ID)

	// Admin vede tutti, in ordine di cognome.
	resp := doJSON(t, app, http.MethodGet, "/api/operatori", bearerFor(t, entity.RoleAdmin, uuid.NewString()), nil)
	var all []dto.ProfiloResponse
	decodeBody(t, resp, &all)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, all, 3)
	assert.Equal(t, "Alfieri", all[0].Cognome)
	assert.Equal(t, "Conti", all[2].Cognome)

	// Il responsabile vede solo gli associati.
	resp = doJSON(t, app, http.MethodGet, "/api/operatori", bearerFor(t, entity.RoleResponsabile, respID), nil)
	var assoc []dto.ProfiloResponse
	decodeBody(t, resp, &assoc)
	require.Len(t, assoc, 1)
	assert.Equal(t, opA.ID, assoc[0].ID)

	// L'operatore vede solo sé stesso.
	resp = doJSON(t, app, http.MethodGet, "/api/operatori", bearerFor(t, entity.RoleOperatore, opB.ID), nil)
	var self []dto.ProfiloResponse
	decodeBody(t, resp, &self)
	require.Len(t, self, 1)
	assert.Equal(t, opB.ID, self[0].ID)
}

func TestOperatori_CreateConPasswordGenerata(t *testing.T) {
	app, store := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/operatori", bearerFor(t, entity.RoleAdmin, uuid.NewString()), dto.CreateProfiloRequest{
		Nome:    "Luca",
		Cognome: "Verdi",
		Email:   "verdi@azienda.it",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.CreatedProfiloResponse
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.ID)
	assert.NotEmpty(t, body.UserID)
	assert.Len(t, body.GeneratedPassword, usecase.GeneratedPasswordLen,
		"la password generata deve comparire nella risposta di creazione")
	assert.Equal(t, 1, store.CountUsers())
	assert.Equal(t, 1, store.CountOperatori())

	// La password generata deve permettere il login.
	loginResp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "verdi@azienda.it",
		Password: body.GeneratedPassword,
	})
	defer loginResp.Body.Close()
	assert.Equal(t, http.StatusOK, loginResp.StatusCode)
}

func TestOperatori_CreateVietataAllOperatore(t *testing.T) {
	app, store := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/operatori", bearerFor(t, entity.RoleOperatore, uuid.NewString()), dto.CreateProfiloRequest{
		Nome:    "Luca",
		Cognome: "Verdi",
		Email:   "verdi@azienda.it",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, store.CountOperatori())
}

func TestOperatori_CreateEmailDuplicata(t *testing.T) {
	app, store := buildTestApp(t)
	seedLogin(t, store, "verdi@azienda.it", "password1", entity.RoleOperatore)

	resp := doJSON(t, app, http.MethodPost, "/api/operatori", bearerFor(t, entity.RoleAdmin, uuid.NewString()), dto.CreateProfiloRequest{
		Nome:    "Luca",
		Cognome: "Verdi",
		Email:   "verdi@azienda.it",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Email già in uso", body.Message)
}

func TestOperatori_CreateDatiNonValidi(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/operatori", bearerFor(t, entity.RoleAdmin, uuid.NewString()), dto.CreateProfiloRequest{
		Nome:  "",
		Email: "non-una-email",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Dati non validi", body.Message)
	assert.NotEmpty(t, body.Errors, "gli errori di campo devono essere elencati")
}

func TestOperatori_GetNonTrovato(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/operatori/"+uuid.NewString(), bearerFor(t, entity.RoleAdmin, uuid.NewString()), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Operatore non trovato", body.Message)
}

func TestOperatori_GetFuoriPerimetro(t *testing.T) {
	app, store := buildTestApp(t)
	altro := seedOperatoreHTTP(t, store, "Anna", "Alfieri", "alfieri@azienda.it")

	// Un operatore non può leggere il profilo di un collega.
	resp := doJSON(t, app, http.MethodGet, "/api/operatori/"+altro.ID, bearerFor(t, entity.RoleOperatore, uuid.NewString()), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestOperatori_UpdateRoundTrip(t *testing.T) {
	app, store := buildTestApp(t)
	op := seedOperatoreHTTP(t, store, "Anna", "Alfieri", "alfieri@azienda.it")

	resp := doJSON(t, app, http.MethodPut, "/api/operatori/"+op.ID, bearerFor(t, entity.RoleAdmin, uuid.NewString()), dto.UpdateProfiloRequest{
		Nome:    "Annamaria",
		Cognome: "Alfieri",
		Email:   "alfieri@azienda.it",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProfiloResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Annamaria", body.Nome)
}

func TestOperatori_UpdateEmailMantieneIlLogin(t *testing.T) {
	app, store := buildTestApp(t)
	op := seedOperatoreHTTP(t, store, "Anna", "Alfieri", "alfieri@azienda.it")
	seedLogin(t, store, "alfieri@azienda.it", "password1", entity.RoleOperatore)
	admin := bearerFor(t, entity.RoleAdmin, uuid.NewString())

	resp := doJSON(t, app, http.MethodPut, "/api/operatori/"+op.ID, admin, dto.UpdateProfiloRequest{
		Nome:    "Anna",
		Cognome: "Alfieri",
		Email:   "nuova@azienda.it",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Il login segue la nuova email con la stessa password.
	loginResp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "nuova@azienda.it",
		Password: "password1",
	})
	defer loginResp.Body.Close()
	assert.Equal(t, http.StatusOK, loginResp.StatusCode)

	// E la vecchia email non è più un'identità valida.
	oldResp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "alfieri@azienda.it",
		Password: "password1",
	})
	defer oldResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, oldResp.StatusCode)
}

func TestOperatori_UpdateEmailDuplicata(t *testing.T) {
	app, store := buildTestApp(t)
	op := seedOperatoreHTTP(t, store, "Anna", "Alfieri", "alfieri@azienda.it")
	seedLogin(t, store, "alfieri@azienda.it", "password1", entity.RoleOperatore)
	seedLogin(t, store, "presa@azienda.it", "password2", entity.RoleResponsabile)

	resp := doJSON(t, app, http.MethodPut, "/api/operatori/"+op.ID, bearerFor(t, entity.RoleAdmin, uuid.NewString()), dto.UpdateProfiloRequest{
		Nome:    "Anna",
		Cognome: "Alfieri",
		Email:   "presa@azienda.it",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Email già in uso", body.Message)
}

func TestOperatori_DeleteConfermaERimuoveAccesso(t *testing.T) {
	app, store := buildTestApp(t)
	op := seedOperatoreHTTP(t, store, "Anna", "Alfieri", "alfieri@azienda.it")
	seedLogin(t, store, "alfieri@azienda.it", "password1", entity.RoleOperatore)

	resp := doJSON(t, app, http.MethodDelete, "/api/operatori/"+op.ID, bearerFor(t, entity.RoleAdmin, uuid.NewString()), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.MessageResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Operatore eliminato con successo", body.Message)
	assert.Equal(t, 0, store.CountOperatori())
	assert.Equal(t, 0, store.CountUsers(), "l'identità di accesso deve cadere con il profilo")

	// Il login non deve più funzionare.
	loginResp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "alfieri@azienda.it",
		Password: "password1",
	})
	defer loginResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, loginResp.StatusCode)
}

func TestResponsabili_CicloCompleto(t *testing.T) {
	app, store := buildTestApp(t)
	admin := bearerFor(t, entity.RoleAdmin, uuid.NewString())

	// Creazione con password fornita dal chiamante.
	createResp := doJSON(t, app, http.MethodPost, "/api/responsabili", admin, dto.CreateProfiloRequest{
		Nome:     "Mario",
		Cognome:  "Rossi",
		Email:    "rossi@azienda.it",
		Password: "sceltadame",
	})
	require.Equal(t, http.StatusCreated, createResp.StatusCode)

	var created dto.CreatedProfiloResponse
	decodeBody(t, createResp, &created)
	assert.Empty(t, created.GeneratedPassword, "password fornita: niente password generata in risposta")

	// Lettura.
	getResp := doJSON(t, app, http.MethodGet, "/api/responsabili/"+created.ID, admin, nil)
	var got dto.ProfiloResponse
	decodeBody(t, getResp, &got)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	assert.Equal(t, "Rossi", got.Cognome)

	// Eliminazione con conferma.
	delResp := doJSON(t, app, http.MethodDelete, "/api/responsabili/"+created.ID, admin, nil)
	var msg dto.MessageResponse
	decodeBody(t, delResp, &msg)
	require.Equal(t, http.StatusOK, delResp.StatusCode)
	assert.Equal(t, "Responsabile eliminato con successo", msg.Message)
	assert.Equal(t, 0, store.CountResponsabili())
	assert.Equal(t, 0, store.CountUsers())
}

func TestOperatori_SenzaToken(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/operatori", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
