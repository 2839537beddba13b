// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordChange is the input of the "set password" prompt: the new
// password typed twice.
type PasswordChange struct {
	Password     string
	Confirmation string
}
