// Package session tracks the active identity: none, standard, or admin.
// The holder is the single writer of the "token" and "user" storage keys.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/surhub/startup-weekend/internal/auth"
	"github.com/surhub/startup-weekend/internal/localstore"
	"github.com/surhub/startup-weekend/internal/model"
	"github.com/surhub/startup-weekend/internal/service"
	"github.com/surhub/startup-weekend/pkg/logger"
)

const (
	// Route targets used by the navigation guards.
	LoginPath = "/login"
	HomePath  = "/"
)

type Holder struct {
	mu       sync.RWMutex
	store    localstore.KV
	ids      *service.IdentityService
	tokenTTL time.Duration

	current  *model.Identity
	token    string
	hydrated bool
}

func NewHolder(store localstore.KV, ids *service.IdentityService, tokenTTL time.Duration) *Holder {
	return &Holder{
		store:    store,
		ids:      ids,
		tokenTTL: tokenTTL,
	}
}

// Hydrate restores the session from durable storage. A malformed stored
// identity yields no session rather than an error; guards stay no-ops until
// hydration has run.
func (h *Holder) Hydrate(ctx context.Context) {
	l := logger.FromContext(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	defer func() { h.hydrated = true }()

	raw, err := h.store.Get(ctx, localstore.KeyUser)
	if err != nil {
		return
	}

	identity := &model.Identity{}
	if err = json.Unmarshal([]byte(raw), identity); err != nil || identity.ID == "" {
		l.Warn("discarding malformed stored identity", zap.Error(err))
		return
	}

	token, err := h.store.Get(ctx, localstore.KeyToken)
	if err != nil {
		return
	}

	h.current = identity
	h.token = token

	l.Info("session hydrated", zap.String("user_id", identity.ID))
}

// Login delegates the credential check to the identity service; on success it
// persists the session and updates in-memory state, on failure state is left
// unchanged.
func (h *Holder) Login(ctx context.Context, email, password string) (*model.Identity, *service.Error) {
	identity, svcErr := h.ids.Login(ctx, email, password)
	if svcErr != nil {
		return nil, svcErr
	}

	if err := h.persist(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// Register persists the session exactly as Login does.
func (h *Holder) Register(ctx context.Context, input service.RegisterInput) (*model.Identity, *service.Error) {
	identity, svcErr := h.ids.Register(ctx, input)
	if svcErr != nil {
		return nil, svcErr
	}

	if err := h.persist(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// Logout clears the persisted session; safe to call when no session exists.
func (h *Holder) Logout(ctx context.Context) {
	_ = h.store.Delete(ctx, localstore.KeyToken)
	_ = h.store.Delete(ctx, localstore.KeyUser)

	h.mu.Lock()
	h.current = nil
	h.token = ""
	h.mu.Unlock()
}

func (h *Holder) Current() (*model.Identity, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.current == nil {
		return nil, false
	}
	copied := *h.current
	return &copied, true
}

func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *Holder) IsAuthenticated() bool {
	_, ok := h.Current()
	return ok
}

func (h *Holder) IsAdmin() bool {
	identity, ok := h.Current()
	return ok && identity.IsAdmin()
}

func (h *Holder) Hydrated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.hydrated
}

// RequireSession is the unauthenticated-redirect guard: it returns the login
// path when a redirect is needed. While hydration is still in flight it is a
// no-op to avoid a premature redirect.
func (h *Holder) RequireSession() (string, bool) {
	if !h.Hydrated() {
		return "", false
	}
	if h.IsAuthenticated() {
		return "", false
	}
	return LoginPath, true
}

// RequireAdmin redirects non-admin sessions to the home page.
func (h *Holder) RequireAdmin() (string, bool) {
	if !h.Hydrated() {
		return "", false
	}
	if h.IsAdmin() {
		return "", false
	}
	return HomePath, true
}

func (h *Holder) persist(ctx context.Context, identity *model.Identity) *service.Error {
	token, err := auth.GenerateToken(identity.ID, auth.TokenTypeForRole(identity.Role), h.tokenTTL)
	if err != nil {
		return service.NewError(service.ErrorCodeUnspecified, "failed to issue session token")
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return service.NewError(service.ErrorCodeUnspecified, "failed to serialize identity")
	}

	if err = h.store.Put(ctx, localstore.KeyToken, token); err != nil {
		return service.NewError(service.ErrorCodeUnspecified, "failed to persist session")
	}
	if err = h.store.Put(ctx, localstore.KeyUser, string(raw)); err != nil {
		return service.NewError(service.ErrorCodeUnspecified, "failed to persist session")
	}

	h.mu.Lock()
	h.current = identity
	h.token = token
	h.hydrated = true
	h.mu.Unlock()

	return nil
}
