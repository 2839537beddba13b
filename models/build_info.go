// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfo carries build-time metadata injected with -ldflags and printed
// by `notes version`.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo fills every empty value with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orNA := func(v string) string {
		if v == "" {
			return "N/A"
		}
		return v
	}
	return BuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
}
