// Package metrics defines and registers all custom Prometheus metrics for the
// RoadReady rental API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry on package init via
// promauto; request-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected" (unknown user and wrong password are not told apart)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Labels:
//   - role: the resolved role ("Admin" or "User")
//   - result: "created", "exists" or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// TokensRevokedTotal counts tokens placed on the denylist by logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of bearer tokens revoked before expiry.",
	},
)

// AuthorizationDeniedTotal counts requests rejected by the role policy.
// Labels:
//   - method: HTTP method
//   - route: echo route pattern (e.g. "/api/car/:id")
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of requests rejected for missing a required role.",
	},
	[]string{"method", "route"},
)

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntityMutationsTotal counts successful writes.
// Labels:
//   - entity: "car", "user", "reservation", "review" or "payment"
//   - operation: "create", "update" or "delete"
var EntityMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_mutations_total",
		Help:      "Total number of successful entity writes, by entity and operation.",
	},
	[]string{"entity", "operation"},
)
