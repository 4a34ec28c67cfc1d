// Package metrics defines and registers all custom Prometheus metrics for the
// identity service. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts sign-in attempts.
// Labels:
//   - method: "password", "signup" or "demo"
//   - outcome: "success", "credential_error" or "transport_error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of sign-in attempts, by method and outcome.",
	},
	[]string{"method", "outcome"},
)

// RehydrationsTotal counts session restores at startup.
// Label:
//   - result: "restored", "empty"
var RehydrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_rehydrations_total",
		Help:      "Total number of session rehydration attempts, by result.",
	},
	[]string{"result"},
)

// ── Guard metrics ─────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route-guard outcomes.
// Label:
//   - action: "allow", "wait" or "redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by action.",
	},
	[]string{"action"},
)

// ── Facet metrics ─────────────────────────────────────────────────────────────

// RoleSwitchesTotal counts persisted active-role facet switches.
// Label:
//   - facet: "startup" or "recruiter"
var RoleSwitchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_switches_total",
		Help:      "Total number of active-role facet switches, by target facet.",
	},
	[]string{"facet"},
)

// ── Admin metrics ─────────────────────────────────────────────────────────────

// AdminLoginsTotal counts privileged sign-in attempts.
// Label:
//   - outcome: "success", "credential_error" or "transport_error"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of privileged sign-in attempts, by outcome.",
	},
	[]string{"outcome"},
)

// AuditDroppedTotal counts audit entries discarded on recorder overflow.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit entries dropped because the recorder buffer was full.",
	},
)
