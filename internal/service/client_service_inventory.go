// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/wine-cellar/internal/adapter"
	"github.com/MKhiriev/wine-cellar/internal/logger"
	"github.com/MKhiriev/wine-cellar/models"
)

type clientInventoryService struct {
	adapter  adapter.ServerAdapter
	notifier Notifier

	mu      sync.RWMutex
	bottles []models.WineBottle

	logger *logger.Logger
}

// NewClientInventoryService returns a [ClientInventoryService] with an empty
// cache.
func NewClientInventoryService(serverAdapter adapter.ServerAdapter, notifier Notifier, logger *logger.Logger) ClientInventoryService {
	return &clientInventoryService{
		adapter:  serverAdapter,
		notifier: notifier,
		bottles:  make([]models.WineBottle, 0),
		logger:   logger,
	}
}

func (s *clientInventoryService) List(ctx context.Context) ([]models.WineBottle, error) {
	bottles, err := s.adapter.ListBottles(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientInventoryService.List").Msg("failed to fetch wine bottles")
		s.notifier.Notify(models.ErrorNotification(MsgListError))
		return s.Bottles(), wrapAdapterError(ErrListBottles, err)
	}
	if bottles == nil {
		bottles = make([]models.WineBottle, 0)
	}

	s.mu.Lock()
	s.bottles = bottles
	s.mu.Unlock()

	s.logger.Debug().Str("func", "clientInventoryService.List").Int("count", len(bottles)).Msg("wine bottles refreshed")
	return slices.Clone(bottles), nil
}

func (s *clientInventoryService) Create(ctx context.Context, draft *models.WineBottleDraft) error {
	if draft == nil {
		return ErrNilDraft
	}

	if err := s.adapter.CreateBottle(ctx, *draft); err != nil {
		s.logger.Err(err).Str("func", "clientInventoryService.Create").Str("title", draft.Title).Msg("failed to add wine bottle")
		s.notifier.Notify(models.ErrorNotification(failureMessage(err, MsgCreateFailed, MsgCreateError)))
		return wrapAdapterError(ErrCreateBottle, err)
	}

	draft.Reset()
	s.notifier.Notify(models.SuccessNotification(MsgCreateSuccessful))

	_, _ = s.List(ctx)
	return nil
}

func (s *clientInventoryService) Delete(ctx context.Context, title string) error {
	if err := s.adapter.DeleteBottle(ctx, title); err != nil {
		s.logger.Err(err).Str("func", "clientInventoryService.Delete").Str("title", title).Msg("failed to delete wine bottle")
		s.notifier.Notify(models.ErrorNotification(failureMessage(err, MsgDeleteFailed, MsgDeleteError)))
		return wrapAdapterError(ErrDeleteBottle, err)
	}

	s.notifier.Notify(models.SuccessNotification(MsgDeleteSuccessful))

	_, _ = s.List(ctx)
	return nil
}

func (s *clientInventoryService) Bottles() []models.WineBottle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bottles)
}

func (s *clientInventoryService) Find(title string) (models.WineBottle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.bottles, func(b models.WineBottle) bool { return b.Title == title })
	if idx < 0 {
		return models.WineBottle{}, false
	}
	return s.bottles[idx], true
}

func (s *clientInventoryService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bottles = make([]models.WineBottle, 0)
}
