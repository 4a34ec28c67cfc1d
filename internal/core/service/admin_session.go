package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/ports"
)

// AdminSession is the parallel privileged session. Its credential source,
// storage namespace and audit trail are all disjoint from the general session,
// and the two are never substitutable: a general identity whose role claims
// admin does not open this session, and vice versa.
type AdminSession struct {
	repo  ports.AdminRepository
	store ports.AdminSessionStore
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewAdminSession(repo ports.AdminRepository, store ports.AdminSessionStore, audit ports.AuditRecorder, log zerolog.Logger) *AdminSession {
	return &AdminSession{repo: repo, store: store, audit: audit, log: log}
}

// Login verifies credentials against the privileged record store and persists
// the admin identity under the admin namespace. The audit write is best-effort:
// it is queued after the session transition and can neither block nor roll it
// back.
func (a *AdminSession) Login(ctx context.Context, username, password string) (*domain.AdminIdentity, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	record, err := a.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Do not reveal whether the username exists.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, errors.Join(domain.ErrTransport, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	admin := &domain.AdminIdentity{
		ID:        record.ID,
		Username:  record.Username,
		Role:      domain.RoleAdmin,
		LastLogin: time.Now().UTC(),
	}

	if err := a.store.Save(ctx, admin); err != nil {
		return nil, errors.Join(domain.ErrTransport, err)
	}

	a.audit.Record(domain.AuditEntry{
		AdminID:   admin.ID,
		Username:  admin.Username,
		Action:    "login",
		Timestamp: admin.LastLogin,
	})
	return admin, nil
}

// Logout clears only the admin namespace. Idempotent; audits best-effort.
func (a *AdminSession) Logout(ctx context.Context) error {
	current, err := a.store.Load(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("admin session unreadable at logout")
	}

	if err := a.store.Clear(ctx); err != nil {
		return err
	}

	if current != nil {
		a.audit.Record(domain.AuditEntry{
			AdminID:   current.ID,
			Username:  current.Username,
			Action:    "logout",
			Timestamp: time.Now().UTC(),
		})
	}
	return nil
}

// Current returns the active admin identity, or nil when signed out. Corrupt
// state is cleared defensively, mirroring the general session's startup rule.
func (a *AdminSession) Current(ctx context.Context) *domain.AdminIdentity {
	admin, err := a.store.Load(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("admin session unusable, clearing")
		if clearErr := a.store.Clear(ctx); clearErr != nil {
			a.log.Error().Err(clearErr).Msg("admin session clear failed")
		}
		return nil
	}
	return admin
}

func (a *AdminSession) IsAuthenticated(ctx context.Context) bool {
	return a.Current(ctx) != nil
}
