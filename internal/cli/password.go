// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

const maxPasswordAttempts = 3

// unlock asks for the password of a locked session until it decrypts or
// the attempts run out. Sessions that are not locked are left alone.
func unlock(ctx context.Context, prompter tui.Prompter, session *service.EditSession) error {
	if session.State() != service.Locked {
		return nil
	}

	title := fmt.Sprintf("Password for %q", session.Title())
	var err error
	for range maxPasswordAttempts {
		var password string
		password, err = prompter.Password(ctx, title)
		if err != nil {
			return err
		}
		if err = session.RequestUnlock(); err != nil {
			return err
		}
		if err = session.SubmitPassword(password); err == nil {
			return nil
		}
		if !errors.Is(err, crypto.ErrDecryption) {
			return err
		}
		title = fmt.Sprintf("Wrong password, try again for %q", session.Title())
	}
	return fmt.Errorf("%w: %w", ErrTooManyAttempts, err)
}

// choosePassword protects a plaintext session with a new password. A
// password that breaks the rules is asked for again with the reason shown.
func choosePassword(ctx context.Context, prompter tui.Prompter, session *service.EditSession) error {
	if session.IsProtected() {
		return ErrAlreadyProtected
	}
	if err := session.EnableProtection(); err != nil {
		return err
	}

	hint := ""
	for range maxPasswordAttempts {
		password, confirmation, err := prompter.NewPassword(ctx, "New password", hint)
		if err != nil {
			_ = session.CancelPrompt()
			return err
		}

		err = session.SetPassword(password, confirmation)
		if err == nil {
			return nil
		}
		if !isPasswordRuleError(err) {
			_ = session.CancelPrompt()
			return err
		}
		hint = err.Error()
	}

	_ = session.CancelPrompt()
	return fmt.Errorf("%w: %s", ErrTooManyAttempts, hint)
}

func isPasswordRuleError(err error) bool {
	return errors.Is(err, validators.ErrPasswordRequired) ||
		errors.Is(err, validators.ErrPasswordTooShort) ||
		errors.Is(err, validators.ErrPasswordMismatch)
}
