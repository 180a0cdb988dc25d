// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	address := strings.TrimSpace(cfg.Adapter.HTTPAddress)
	if address == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidAdapterConfigs)
	}
	if _, err := url.Parse(address); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	if cfg.App.NotificationTTL <= 0 {
		return fmt.Errorf("%w: notification ttl must be positive", ErrInvalidAppConfigs)
	}

	return nil
}
