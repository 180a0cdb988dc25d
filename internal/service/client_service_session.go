// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/wine-cellar/internal/adapter"
	"github.com/MKhiriev/wine-cellar/internal/logger"
	"github.com/MKhiriev/wine-cellar/internal/store"
	"github.com/MKhiriev/wine-cellar/models"
)

// inventoryRefresher is the part of the inventory the session manager drives.
type inventoryRefresher interface {
	List(ctx context.Context) ([]models.WineBottle, error)
	Reset()
}

type clientSessionService struct {
	adapter   adapter.ServerAdapter
	store     store.SessionStore
	inventory inventoryRefresher
	notifier  Notifier

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

// NewClientSessionService returns a [ClientSessionService] starting in the
// LoggedOut state.
func NewClientSessionService(
	serverAdapter adapter.ServerAdapter,
	sessionStore store.SessionStore,
	inventory inventoryRefresher,
	notifier Notifier,
	logger *logger.Logger,
) ClientSessionService {
	return &clientSessionService{
		adapter:   serverAdapter,
		store:     sessionStore,
		inventory: inventory,
		notifier:  notifier,
		session:   models.Session{State: models.LoggedOut},
		logger:    logger,
	}
}

func (s *clientSessionService) Signup(ctx context.Context, creds models.Credentials) error {
	if err := s.adapter.Signup(ctx, creds); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Signup").Msg("signup rejected")
		s.notifier.Notify(models.ErrorNotification(failureMessage(err, MsgSignupFailed, MsgSignupError)))
		return wrapAdapterError(ErrSignup, err)
	}

	s.notifier.Notify(models.SuccessNotification(MsgSignupSuccessful))

	_, err := s.Login(ctx, creds)
	return err
}

func (s *clientSessionService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := s.adapter.Login(ctx, creds)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Login").Msg("login rejected")
		s.notifier.Notify(models.ErrorNotification(failureMessage(err, MsgLoginFailed, MsgLoginError)))
		return s.Session(), wrapAdapterError(ErrLogin, err)
	}

	s.adapter.SetToken(resp.Token)
	session := s.setSession(models.Session{State: models.LoggedIn, Token: resp.Token})
	s.persistToken(ctx, resp.Token)

	s.logger.Info().Str("func", "clientSessionService.Login").Bool("has_token", session.HasToken()).Msg("logged in")
	s.notifier.Notify(models.SuccessNotification(MsgLoginSuccessful))

	// failures are reported by the inventory itself
	_, _ = s.inventory.List(ctx)

	return session, nil
}

// persistToken writes token to the durable slot. An empty token clears the
// slot so a stale token from an earlier session is not restored on the
// next start.
func (s *clientSessionService) persistToken(ctx context.Context, token string) {
	var err error
	if token == "" {
		err = s.store.Clear(ctx)
	} else {
		err = s.store.Save(ctx, token)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.persistToken").Msg("failed to persist auth token")
	}
}

func (s *clientSessionService) RestoreSession(ctx context.Context) (models.Session, bool, error) {
	token, err := s.store.Load(ctx)
	if errors.Is(err, store.ErrSessionValueNotFound) {
		return s.Session(), false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.RestoreSession").Msg("failed to read persisted token")
		return s.Session(), false, fmt.Errorf("restore session: %w", err)
	}

	s.adapter.SetToken(token)
	session := s.setSession(models.Session{State: models.LoggedIn, Token: token})
	s.logger.Info().Str("func", "clientSessionService.RestoreSession").Msg("session restored from local storage")

	_, _ = s.inventory.List(ctx)

	return session, true, nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.setSession(models.Session{State: models.LoggedOut})
	s.adapter.SetToken("")
	s.inventory.Reset()

	if err := s.store.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Logout").Msg("failed to clear persisted token")
		s.notifier.Notify(models.ErrorNotification(MsgLogoutError))
		return fmt.Errorf("%w: %w", ErrLogout, err)
	}

	s.logger.Info().Str("func", "clientSessionService.Logout").Msg("logged out")
	return nil
}

func (s *clientSessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *clientSessionService) setSession(session models.Session) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return session
}
