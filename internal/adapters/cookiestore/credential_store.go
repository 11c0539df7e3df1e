// Package cookiestore keeps the credential slot inside an encrypted, signed browser cookie.
package cookiestore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/ports"
)

const (
	defaultCookieName = "sb_session"
	tokenKey          = "token"
	minHashKeyLen     = 32
)

// Options configures CredentialStore.
type Options struct {
	HashKey      []byte        // Required: HMAC key, at least 32 bytes
	BlockKey     []byte        // Optional: AES key (16, 24 or 32 bytes); strongly recommended
	CookieName   string        // Optional: defaults to "sb_session"
	CookieDomain string        // Optional
	MaxAge       time.Duration // Optional: cookie lifetime, defaults to 24h
	Secure       bool          // Optional: force the Secure attribute even behind plain HTTP
}

// CredentialStore is a ports.CredentialStore backed by gorilla/sessions cookies.
type CredentialStore struct {
	store  *sessions.CookieStore
	name   string
	secure bool
}

var _ ports.CredentialStore = (*CredentialStore)(nil)

// NewCredentialStore creates a cookie-backed credential store.
func NewCredentialStore(opts Options) (*CredentialStore, error) {
	if len(opts.HashKey) < minHashKeyLen {
		return nil, fmt.Errorf("cookie hash key must be at least %d bytes", minHashKeyLen)
	}
	switch len(opts.BlockKey) {
	case 0, 16, 24, 32:
	default:
		return nil, errors.New("cookie block key must be 16, 24 or 32 bytes")
	}

	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	name := opts.CookieName
	if name == "" {
		name = defaultCookieName
	}

	var keys [][]byte
	if len(opts.BlockKey) > 0 {
		keys = [][]byte{opts.HashKey, opts.BlockKey}
	} else {
		keys = [][]byte{opts.HashKey}
	}
	store := sessions.NewCookieStore(keys...)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   opts.CookieDomain,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(int(maxAge.Seconds()))

	return &CredentialStore{store: store, name: name, secure: opts.Secure}, nil
}

// Slot binds the slot of the client behind r.
func (s *CredentialStore) Slot(w http.ResponseWriter, r *http.Request) ports.CredentialSlot {
	return &credentialSlot{store: s, w: w, r: r}
}

type credentialSlot struct {
	store *CredentialStore
	w     http.ResponseWriter
	r     *http.Request

	// written holds the value set or cleared earlier in this request, which the
	// request's own cookie header does not reflect yet.
	written *domainauth.Credential
}

func (c *credentialSlot) Get(_ context.Context) (domainauth.Credential, error) {
	if c.written != nil {
		if c.written.IsZero() {
			return "", domainauth.ErrNoCredential
		}
		return *c.written, nil
	}

	if _, err := c.r.Cookie(c.store.name); errors.Is(err, http.ErrNoCookie) {
		return "", domainauth.ErrNoCredential
	}
	sess, err := c.store.store.Get(c.r, c.store.name)
	var scErr securecookie.Error
	if errors.As(err, &scErr) && scErr.IsDecode() {
		// Tampered, expired or signed with another key: the slot is empty.
		if cerr := c.Clear(context.Background()); cerr != nil {
			return "", cerr
		}
		return "", domainauth.ErrNoCredential
	}
	if err != nil {
		return "", fmt.Errorf("decode session cookie: %w", err)
	}
	v, _ := sess.Values[tokenKey].(string)
	cred := domainauth.Credential(v)
	if cred.IsZero() {
		return "", domainauth.ErrNoCredential
	}
	return cred, nil
}

func (c *credentialSlot) Set(_ context.Context, cred domainauth.Credential) error {
	if cred.IsZero() {
		return errors.New("credential cannot be empty")
	}
	sess := c.fresh()
	sess.Values[tokenKey] = cred.Value()
	if err := sess.Save(c.r, c.w); err != nil {
		return fmt.Errorf("save session cookie: %w", err)
	}
	c.written = &cred
	return nil
}

func (c *credentialSlot) Clear(_ context.Context) error {
	sess := c.fresh()
	sess.Options.MaxAge = -1
	if err := sess.Save(c.r, c.w); err != nil {
		return fmt.Errorf("expire session cookie: %w", err)
	}
	empty := domainauth.Credential("")
	c.written = &empty
	return nil
}

// fresh returns a new session carrying the store's cookie options. An unreadable
// existing cookie is simply replaced.
func (c *credentialSlot) fresh() *sessions.Session {
	sess := sessions.NewSession(c.store.store, c.store.name)
	opts := *c.store.store.Options
	opts.Secure = c.store.secure || isSecure(c.r)
	sess.Options = &opts
	sess.IsNew = true
	return sess
}

func isSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
