package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// DefaultSessionNamespace prefixes the general session keys.
const DefaultSessionNamespace = "session"

// SessionStore persists the one general session as four keys: the serialized
// identity plus token, role and account id as scalars, so hot-path permission
// checks read one key without deserialising the whole record. All four are
// written in a single MSet and deleted in a single Del.
type SessionStore struct {
	kv        KV
	namespace string
}

// NewSessionStore builds a session store over kv. An empty namespace selects
// DefaultSessionNamespace; distinct namespaces yield fully independent stores.
func NewSessionStore(kv KV, namespace string) *SessionStore {
	if namespace == "" {
		namespace = DefaultSessionNamespace
	}
	return &SessionStore{kv: kv, namespace: namespace}
}

func (s *SessionStore) identityKey() string { return s.namespace + ":identity" }
func (s *SessionStore) tokenKey() string    { return s.namespace + ":token" }
func (s *SessionStore) roleKey() string     { return s.namespace + ":role" }
func (s *SessionStore) accountKey() string  { return s.namespace + ":account_id" }

func (s *SessionStore) keys() []string {
	return []string{s.identityKey(), s.tokenKey(), s.roleKey(), s.accountKey()}
}

func (s *SessionStore) Save(ctx context.Context, identity *domain.Identity) error {
	if identity == nil {
		return fmt.Errorf("session store: cannot save nil identity")
	}

	blob, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session store: marshal identity: %w", err)
	}

	return s.kv.MSet(ctx, map[string]string{
		s.identityKey(): string(blob),
		s.tokenKey():    identity.Token,
		s.roleKey():     string(identity.Role),
		s.accountKey():  identity.ID,
	})
}

// Load returns the stored identity, or (nil, nil) when the identity blob or
// the token is missing: partial state is absent, not partially valid. A blob
// that is present but unparsable yields domain.ErrCorruptSession so the caller
// can clear defensively.
func (s *SessionStore) Load(ctx context.Context) (*domain.Identity, error) {
	found, err := s.kv.MGet(ctx, s.identityKey(), s.tokenKey())
	if err != nil {
		return nil, fmt.Errorf("session store: load: %w", err)
	}

	blob, hasIdentity := found[s.identityKey()]
	token, hasToken := found[s.tokenKey()]
	if !hasIdentity || blob == "" || !hasToken || token == "" {
		return nil, nil
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(blob), &identity); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSession, err)
	}
	return &identity, nil
}

// Clear removes all four session keys. Idempotent: clearing an empty store
// succeeds silently.
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.kv.Del(ctx, s.keys()...)
}
