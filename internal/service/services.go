// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Services groups the application services built over one storage layer.
type Services struct {
	Notes      NotesService
	Enrichment EnrichmentService
	AppInfo    AppInfoService
}

// NewServices wires the services. enrichment may be nil when no enrichment
// service is configured.
func NewServices(storages *store.ClientStorages, codec crypto.ContentCodec, enrichment adapter.EnrichmentClient,
	buildInfo models.BuildInfo, log *logger.Logger, opts ...NotesOption) *Services {
	validator := validators.NewNoteValidator()

	return &Services{
		Notes:      NewNotesService(storages.Notes, codec, validator, log, opts...),
		Enrichment: NewEnrichmentService(enrichment, log),
		AppInfo:    NewAppInfoService(buildInfo),
	}
}
