package httpx

import (
	"context"

	"github.com/sportbooking/sportbook-web/internal/ports"
)

// slotKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type slotKey struct{}

// SetSlotInContext returns a child context that carries the credential slot of the
// client that passed the session guard. If slot is nil, the original ctx is returned unchanged.
func SetSlotInContext(ctx context.Context, slot ports.CredentialSlot) context.Context {
	if slot == nil {
		return ctx
	}
	return context.WithValue(ctx, slotKey{}, slot)
}

// GetSlotFromContext returns the guarded credential slot and a boolean indicating presence.
func GetSlotFromContext(ctx context.Context) (ports.CredentialSlot, bool) {
	if slot, ok := ctx.Value(slotKey{}).(ports.CredentialSlot); ok && slot != nil {
		return slot, true
	}
	return nil, false
}
