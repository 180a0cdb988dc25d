// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/MKhiriev/wine-cellar/internal/adapter"
	"github.com/MKhiriev/wine-cellar/internal/config"
	"github.com/MKhiriev/wine-cellar/internal/logger"
	"github.com/MKhiriev/wine-cellar/internal/store"
	"github.com/MKhiriev/wine-cellar/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory stand-in for the remote wine inventory API.
type fakeAPI struct {
	mu          sync.Mutex
	users       map[string]string
	bottles     []models.WineBottle
	failCreate  bool
	requireAuth bool
	calls       []string
}

func newFakeAPI(requireAuth bool) *fakeAPI {
	return &fakeAPI{users: make(map[string]string), requireAuth: requireAuth}
}

func (f *fakeAPI) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.calls = append(f.calls, r.Method+" "+r.URL.Path)
			f.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/signup", f.signup)
	r.Post("/login", f.login)
	r.Group(func(r chi.Router) {
		r.Use(f.auth)
		r.Get("/wine_bottles", f.list)
		r.Post("/wine_bottles", f.create)
		r.Delete("/wine_bottles/{title}", f.delete)
	})
	return r
}

func (f *fakeAPI) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f.requireAuth && !f.validToken(r.Header.Get("Authorization")) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeAPI) validToken(header string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email := range f.users {
		if header == "Bearer tok-"+email {
			return true
		}
	}
	return false
}

func (f *fakeAPI) signup(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[creds.Email]; ok {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	}
	f.users[creds.Email] = creds.Password
	w.WriteHeader(http.StatusCreated)
}

func (f *fakeAPI) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	pw, ok := f.users[creds.Email]
	f.mu.Unlock()
	if !ok || pw != creds.Password {
		http.Error(w, "invalid email/password", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(models.LoginResponse{Token: "tok-" + creds.Email})
}

func (f *fakeAPI) list(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	if len(f.bottles) == 0 {
		_, _ = w.Write([]byte("null"))
		return
	}
	_ = json.NewEncoder(w).Encode(f.bottles)
}

func (f *fakeAPI) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}
	bottle := models.WineBottle{Title: r.FormValue("title"), Description: r.FormValue("description")}
	if _, hdr, err := r.FormFile("photo"); err == nil {
		bottle.PhotoURL = "https://cdn.example/" + hdr.Filename
	}
	f.bottles = append(f.bottles, bottle)
	w.WriteHeader(http.StatusCreated)
}

func (f *fakeAPI) delete(w http.ResponseWriter, r *http.Request) {
	// chi matches against the escaped path, so the parameter is still encoded
	title, err := url.PathUnescape(chi.URLParam(r, "title"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := slices.IndexFunc(f.bottles, func(b models.WineBottle) bool { return b.Title == title })
	if idx < 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	f.bottles = slices.Delete(f.bottles, idx, idx+1)
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeAPI) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

type e2eEnv struct {
	api      *fakeAPI
	storages *store.ClientStorages
	services *ClientServices
	notifier *recordingNotifier
}

func newE2EEnv(t *testing.T, api *fakeAPI, dsn string) *e2eEnv {
	t.Helper()
	srv := httptest.NewServer(api.router())
	t.Cleanup(srv.Close)

	log := logger.Nop()
	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:       srv.URL,
		RequireAuthHeader: api.requireAuth,
	}, log)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	services := NewClientServices(storages, serverAdapter, notifier, models.NewAppBuildInfo("1.0.0", "", ""), log)

	return &e2eEnv{api: api, storages: storages, services: services, notifier: notifier}
}

func TestClientServices_EndToEnd(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cellar.db")
	env := newE2EEnv(t, newFakeAPI(true), dsn)

	// signup chains login; the empty collection arrives as JSON null
	require.NoError(t, env.services.SessionService.Signup(ctx, models.Credentials{Email: "a@b.com", Password: "pw"}))

	session := env.services.SessionService.Session()
	assert.Equal(t, models.Session{State: models.LoggedIn, Token: "tok-a@b.com"}, session)

	token, err := env.storages.SessionStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-a@b.com", token)
	assert.NotNil(t, env.services.InventoryService.Bottles())
	assert.Empty(t, env.services.InventoryService.Bottles())

	// create with a photo
	photo := filepath.Join(t.TempDir(), "label.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("jpeg"), 0o600))
	draft := &models.WineBottleDraft{Title: "Chateau X", Description: "2010", PhotoPath: photo}
	require.NoError(t, env.services.InventoryService.Create(ctx, draft))
	assert.True(t, draft.IsZero())

	got, ok := env.services.InventoryService.Find("Chateau X")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example/label.jpg", got.PhotoURL)

	draft = &models.WineBottleDraft{Title: "red/white & rosé?"}
	require.NoError(t, env.services.InventoryService.Create(ctx, draft))
	assert.Len(t, env.services.InventoryService.Bottles(), 2)

	// a failed create keeps the draft
	env.api.mu.Lock()
	env.api.failCreate = true
	env.api.mu.Unlock()
	draft = &models.WineBottleDraft{Title: "Rioja", Description: "Reserva"}
	err = env.services.InventoryService.Create(ctx, draft)
	assert.ErrorIs(t, err, ErrCreateBottle)
	assert.Equal(t, models.WineBottleDraft{Title: "Rioja", Description: "Reserva"}, *draft)

	// titles round-trip exactly through the path
	require.NoError(t, env.services.InventoryService.Delete(ctx, "red/white & rosé?"))
	assert.Equal(t, []string{"Chateau X"}, titles(env.services.InventoryService.Bottles()))

	require.NoError(t, env.services.InventoryService.Delete(ctx, "Chateau X"))
	assert.Empty(t, env.services.InventoryService.Bottles())

	err = env.services.InventoryService.Delete(ctx, "Chateau X")
	assert.ErrorIs(t, err, ErrDeleteBottle)

	require.NoError(t, env.services.SessionService.Logout(ctx))
	_, err = env.storages.SessionStore.Load(ctx)
	assert.ErrorIs(t, err, store.ErrSessionValueNotFound)

	messages := make([]string, 0)
	for _, n := range env.notifier.all() {
		messages = append(messages, n.Message)
	}
	assert.Equal(t, []string{
		MsgSignupSuccessful,
		MsgLoginSuccessful,
		MsgCreateSuccessful,
		MsgCreateSuccessful,
		MsgCreateFailed,
		MsgDeleteSuccessful,
		MsgDeleteSuccessful,
		MsgDeleteFailed,
	}, messages)
}

func TestClientServices_RestoreWithoutValidation(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cellar.db")

	api := newFakeAPI(true)
	first := newE2EEnv(t, api, dsn)
	require.NoError(t, first.services.SessionService.Signup(ctx, models.Credentials{Email: "a@b.com", Password: "pw"}))
	require.NoError(t, first.storages.Close())

	second := newE2EEnv(t, api, dsn)
	before := len(api.callLog())

	session, found, err := second.services.SessionService.RestoreSession(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, session.IsLoggedIn())

	// the only request is the inventory refresh
	assert.Equal(t, []string{"GET /wine_bottles"}, api.callLog()[before:])
}

func TestClientServices_FailedLoginPersistsNothing(t *testing.T) {
	ctx := context.Background()
	env := newE2EEnv(t, newFakeAPI(true), filepath.Join(t.TempDir(), "cellar.db"))

	_, err := env.services.SessionService.Login(ctx, models.Credentials{Email: "nobody@b.com", Password: "x"})
	assert.ErrorIs(t, err, ErrLogin)
	assert.Equal(t, models.LoggedOut, env.services.SessionService.Session().State)

	_, err = env.storages.SessionStore.Load(ctx)
	assert.ErrorIs(t, err, store.ErrSessionValueNotFound)
	assert.Equal(t, []models.Notification{models.ErrorNotification(MsgLoginFailed)}, env.notifier.all())
}

func TestClientServices_UnauthorizedListKeepsSession(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cellar.db")
	api := newFakeAPI(true)

	seed, err := store.NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, seed.SessionStore.Save(ctx, "revoked"))
	require.NoError(t, seed.Close())

	env := newE2EEnv(t, api, dsn)
	_, found, err := env.services.SessionService.RestoreSession(ctx)
	require.NoError(t, err)
	assert.True(t, found)

	assert.True(t, env.services.SessionService.Session().IsLoggedIn())
	assert.Equal(t, []models.Notification{models.ErrorNotification(MsgListError)}, env.notifier.all())
}

func TestClientServices_WithoutAuthHeader(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI(false)
	api.bottles = []models.WineBottle{{Title: "Rioja"}}
	env := newE2EEnv(t, api, filepath.Join(t.TempDir(), "cellar.db"))

	bottles, err := env.services.InventoryService.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rioja"}, titles(bottles))
}

func TestNewClientServices_NilNotifier(t *testing.T) {
	storages := &store.ClientStorages{}
	services := NewClientServices(storages, nil, nil, models.NewAppBuildInfo("2.0.0", "", ""), logger.Nop())

	require.NotNil(t, services.SessionService)
	require.NotNil(t, services.InventoryService)
	assert.Equal(t, "2.0.0", services.AppInfoService.GetAppVersion(context.Background()))
	assert.Equal(t, "N/A", services.AppInfoService.GetBuildInfo(context.Background()).BuildCommit())
}

func titles(bottles []models.WineBottle) []string {
	out := make([]string, 0, len(bottles))
	for _, b := range bottles {
		out = append(out, b.Title)
	}
	return out
}
