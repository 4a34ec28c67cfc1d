package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/identity-system/internal/api/metrics"
	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/ports"
)

// GuardAction is the outcome of one guard evaluation.
type GuardAction int

const (
	// GuardAllow lets the request through.
	GuardAllow GuardAction = iota
	// GuardWait renders a neutral placeholder: rehydration has not finished,
	// so no redirect decision may be made yet.
	GuardWait
	// GuardRedirect bounces the request to Decision.Target.
	GuardRedirect
)

// GuardState is the session snapshot a guard decides on.
type GuardState struct {
	Loading       bool
	Authenticated bool
	Role          domain.Role
}

// Decision is what the guard chose to do with a request.
type Decision struct {
	Action GuardAction
	Target string
}

// DecideGuard is the pure gating rule. While loading it always waits:
// redirecting before rehydration completes would bounce an already
// authenticated user to the login screen. Once settled, an unauthenticated
// request redirects to the login route, and an authenticated one with the
// wrong role redirects to the neutral home route instead, distinguishing
// "wrong role" from "not signed in".
func DecideGuard(state GuardState, loginRoute string, required ...domain.Role) Decision {
	if state.Loading {
		return Decision{Action: GuardWait}
	}
	if !state.Authenticated {
		if loginRoute == "" {
			loginRoute = "/login"
		}
		return Decision{Action: GuardRedirect, Target: loginRoute}
	}
	if len(required) == 0 {
		return Decision{Action: GuardAllow}
	}
	for _, role := range required {
		if state.Role == role {
			return Decision{Action: GuardAllow}
		}
	}
	return Decision{Action: GuardRedirect, Target: domain.HomeRoute}
}

// Guard gates a route on the coordinator's session state, re-evaluating the
// rule on every request. An empty loginRoute selects the generic login screen;
// role-specific screens pass their own (e.g. "/recruiter/login").
func Guard(session ports.SessionReader, loginRoute string, required ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := GuardState{
				Loading:       session.Loading(),
				Authenticated: session.IsAuthenticated(),
			}
			if user := session.User(); user != nil {
				state.Role = user.Role
			}

			decision := DecideGuard(state, loginRoute, required...)
			switch decision.Action {
			case GuardWait:
				metrics.GuardDecisionsTotal.WithLabelValues("wait").Inc()
				return c.JSON(http.StatusOK, map[string]string{"status": "pending"})
			case GuardRedirect:
				metrics.GuardDecisionsTotal.WithLabelValues("redirect").Inc()
				return c.Redirect(http.StatusFound, decision.Target)
			default:
				metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
				return next(c)
			}
		}
	}
}
