package redis

// Package redis keeps credential slots in Redis, keyed by an opaque session cookie.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/ports"
)

const (
	defaultPrefix     = "credential:"
	defaultCookieName = "sb_sid"
	defaultTTL        = 24 * time.Hour
)

// CredentialStoreOptions configures CredentialStore.
type CredentialStoreOptions struct {
	Client       redis.UniversalClient // Required
	Prefix       string                // Optional: key prefix, defaults to "credential:"
	TTL          time.Duration         // Optional: slot lifetime, defaults to 24h
	CookieName   string                // Optional: defaults to "sb_sid"
	CookieDomain string                // Optional
}

// CredentialStore is a Redis-backed ports.CredentialStore. The browser only ever holds a
// random session id; the bearer token stays server side.
type CredentialStore struct {
	client       redis.UniversalClient
	prefix       string
	ttl          time.Duration
	cookieName   string
	cookieDomain string
}

var _ ports.CredentialStore = (*CredentialStore)(nil)

// NewCredentialStore creates a Redis credential store.
func NewCredentialStore(opts CredentialStoreOptions) (*CredentialStore, error) {
	if opts.Client == nil {
		return nil, errors.New("redis client is required")
	}
	s := &CredentialStore{
		client:       opts.Client,
		prefix:       opts.Prefix,
		ttl:          opts.TTL,
		cookieName:   opts.CookieName,
		cookieDomain: opts.CookieDomain,
	}
	if s.prefix == "" {
		s.prefix = defaultPrefix
	}
	if s.ttl <= 0 {
		s.ttl = defaultTTL
	}
	if s.cookieName == "" {
		s.cookieName = defaultCookieName
	}
	return s, nil
}

// Slot binds the slot of the client behind r.
func (s *CredentialStore) Slot(w http.ResponseWriter, r *http.Request) ports.CredentialSlot {
	slot := &credentialSlot{store: s, w: w, r: r}
	if c, err := r.Cookie(s.cookieName); err == nil {
		if id, perr := uuid.Parse(c.Value); perr == nil {
			slot.sid = id.String()
		}
	}
	return slot
}

type credentialSlot struct {
	store *CredentialStore
	w     http.ResponseWriter
	r     *http.Request
	sid   string
}

func (c *credentialSlot) Get(ctx context.Context) (domainauth.Credential, error) {
	if c.sid == "" {
		return "", domainauth.ErrNoCredential
	}
	val, err := c.store.client.Get(ctx, c.store.prefix+c.sid).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domainauth.ErrNoCredential
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	cred := domainauth.Credential(val)
	if cred.IsZero() {
		return "", domainauth.ErrNoCredential
	}
	return cred, nil
}

// Set stores cred under a fresh session id so a pre-login id never carries a credential.
func (c *credentialSlot) Set(ctx context.Context, cred domainauth.Credential) error {
	if cred.IsZero() {
		return errors.New("credential cannot be empty")
	}

	sid := uuid.NewString()
	if err := c.store.client.Set(ctx, c.store.prefix+sid, cred.Value(), c.store.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	if c.sid != "" {
		if err := c.store.client.Del(ctx, c.store.prefix+c.sid).Err(); err != nil {
			return fmt.Errorf("redis del previous: %w", err)
		}
	}
	c.sid = sid
	c.writeCookie(sid, int(c.store.ttl.Seconds()))
	return nil
}

func (c *credentialSlot) Clear(ctx context.Context) error {
	if c.sid == "" {
		return nil
	}
	key := c.store.prefix + c.sid
	c.sid = ""
	c.writeCookie("", -1)
	if err := c.store.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *credentialSlot) writeCookie(value string, maxAge int) {
	cookie := &http.Cookie{
		Name:     c.store.cookieName,
		Value:    value,
		Path:     "/",
		Domain:   c.store.cookieDomain,
		HttpOnly: true,
		Secure:   isSecure(c.r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
	if maxAge < 0 {
		cookie.Expires = time.Unix(0, 0).UTC()
	}
	http.SetCookie(c.w, cookie)
}

func isSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
