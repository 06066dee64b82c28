// Package metrics defines and registers all custom Prometheus metrics for
// the appointment register. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "register"

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - result: "granted", "denied" (bad credentials) or "conflict"
//     (account in use elsewhere)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// SessionConflictsTotal counts logins rejected because the account already
// held a live session elsewhere.
var SessionConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_conflicts_total",
		Help:      "Total number of logins rejected due to an existing live session.",
	},
)

// StaleSessionsTotal counts requests rejected because their session had
// been superseded by a newer login.
var StaleSessionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_sessions_total",
		Help:      "Total number of requests rejected carrying a superseded session.",
	},
)

// AppointmentsCreatedTotal counts created appointments.
// Label:
//   - kind: "sequential" or "historical"
var AppointmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments created, by allocation kind.",
	},
	[]string{"kind"},
)

// BroadcastsTotal counts frames queued for websocket fan-out, by topic.
var BroadcastsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcasts_total",
		Help:      "Total number of broadcast frames queued for fan-out, by topic.",
	},
	[]string{"topic"},
)

// WSClients tracks the number of currently connected websocket clients.
var WSClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ws_clients",
		Help:      "Current number of connected websocket clients.",
	},
)
