// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/rf-checker/internal/adapter"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/notify"
	"github.com/MKhiriev/rf-checker/internal/store"
	"github.com/MKhiriev/rf-checker/internal/validators"
)

type Services struct {
	Checker     Checker
	Auth        Auth
	Coordinator *Coordinator
}

func NewServices(storages *store.Storages, api adapter.ContentAPI, notifier notify.Lifecycle, log *logger.Logger) *Services {
	validator := validators.NewPayloadValidator()
	checker := NewOrchestrator(storages.Credentials, storages.Results, api, notifier, validator, log)

	return &Services{
		Checker:     checker,
		Auth:        NewAuthService(storages.Credentials, api, validator, log),
		Coordinator: NewCoordinator(checker, notifier, storages.Results, log),
	}
}
