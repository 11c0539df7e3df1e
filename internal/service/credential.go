package service

import (
	"context"
	"errors"
	"log/slog"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/ports"
)

// readCredential returns the slot's bearer token, or an unauthorized error when there is none.
func readCredential(ctx context.Context, slot ports.CredentialSlot) (domainauth.Credential, error) {
	cred, err := slot.Get(ctx)
	if errors.Is(err, domainauth.ErrNoCredential) || (err == nil && cred.IsZero()) {
		return "", apperrors.Unauthorized("authentication required")
	}
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "read credential")
	}
	return cred, nil
}

// dropRejectedCredential clears the slot when the backend refused the credential on a
// protected call and reports the failure as unauthorized. Other errors pass through.
func dropRejectedCredential(ctx context.Context, logger *slog.Logger, slot ports.CredentialSlot, err error) error {
	if !errors.Is(err, domainauth.ErrCredentialRejected) {
		return err
	}
	if cerr := slot.Clear(ctx); cerr != nil {
		logger.WarnContext(ctx, "clear rejected credential failed", "error", cerr)
	}
	logger.WarnContext(ctx, "backend rejected credential", "error", err)
	if apperrors.IsUnauthorized(err) {
		return err
	}
	return apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "authentication required")
}
