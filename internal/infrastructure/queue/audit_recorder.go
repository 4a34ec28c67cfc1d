package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/ports"
)

const (
	channelBuffer = 64
	writeTimeout  = 5 * time.Second
)

// AuditRecorder decouples audit persistence from the admin session
// transitions that produce the entries. Record never blocks: when the buffer
// is full the entry is dropped and logged, because a failed or slow audit
// write must not delay or roll back a login/logout.
type AuditRecorder struct {
	entries chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
	dropped func()
}

// NewAuditRecorder creates a recorder writing to repo. onDrop is invoked for
// every entry discarded on overflow; pass nil when no counter is wired.
func NewAuditRecorder(repo ports.AuditRepository, log zerolog.Logger, onDrop func()) *AuditRecorder {
	if onDrop == nil {
		onDrop = func() {}
	}
	return &AuditRecorder{
		entries: make(chan domain.AuditEntry, channelBuffer),
		repo:    repo,
		log:     log,
		dropped: onDrop,
	}
}

// Start launches the writer goroutine. It stops when ctx is cancelled.
func (r *AuditRecorder) Start(ctx context.Context) {
	go r.run(ctx)
}

// Record enqueues an audit entry best-effort.
func (r *AuditRecorder) Record(entry domain.AuditEntry) {
	select {
	case r.entries <- entry:
	default:
		r.dropped()
		r.log.Warn().
			Str("action", entry.Action).
			Str("username", entry.Username).
			Msg("audit buffer full, entry dropped")
	}
}

func (r *AuditRecorder) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-r.entries:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			if err := r.repo.Insert(writeCtx, entry); err != nil {
				r.log.Error().Err(err).
					Str("action", entry.Action).
					Str("username", entry.Username).
					Msg("audit write failed")
			}
			cancel()
		}
	}
}
