package middleware

import (
	"fmt"
	"net/http"

	"hrms/internal/domain/access"
	"hrms/internal/domain/audit"
	"hrms/internal/domain/registry"
	"hrms/internal/transport/http/api"
)

// auditTrail, when set, receives one event per denied request. Set once at
// startup before the server accepts traffic.
var auditTrail *audit.Trail

func UseAuditTrail(trail *audit.Trail) {
	auditTrail = trail
}

func recordDenial(r *http.Request, identity registry.Identity) {
	if auditTrail == nil {
		return
	}
	auditTrail.Record(audit.EventDenied, identity, fmt.Sprintf("%s %s", r.Method, r.URL.Path), GetRequestID(r.Context()))
}

// RequireView gates a route on the access policy's per-resource view grant.
func RequireView(resource access.Resource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if err := access.RequireView(identity.Role, resource); err != nil {
				recordDenial(r, identity)
				api.FailFromError(w, err, GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAction gates a route on a record-level action grant.
func RequireAction(resource access.Resource, action access.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if err := access.Require(identity.Role, resource, action); err != nil {
				recordDenial(r, identity)
				api.FailFromError(w, err, GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
