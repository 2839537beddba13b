// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-notes-keeper/models"

// AppInfoService reports how the running binary was built.
type AppInfoService interface {
	BuildInfo() models.BuildInfo
}

type appInfoService struct {
	buildInfo models.BuildInfo
}

func NewAppInfoService(buildInfo models.BuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

func (s *appInfoService) BuildInfo() models.BuildInfo {
	return s.buildInfo
}
