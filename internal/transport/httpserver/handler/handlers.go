package handler

import (
	"net/http"
	"time"

	"gymdesk/internal/auth"
	admindomain "gymdesk/internal/domain/admin"
	memberdomain "gymdesk/internal/domain/member"
	paymentdomain "gymdesk/internal/domain/payment"
	plandomain "gymdesk/internal/domain/plan"
	"gymdesk/pkg/logger"
)

type Handlers struct {
	Admins   *admindomain.Service
	Members  *memberdomain.Service
	Plans    *plandomain.Service
	Payments *paymentdomain.Service

	tokens       *auth.TokenIssuer
	secureCookie bool
	now          func() time.Time
	log          logger.Logger
}

func New(admins *admindomain.Service, members *memberdomain.Service, plans *plandomain.Service, payments *paymentdomain.Service, tokens *auth.TokenIssuer, secureCookie bool, log logger.Logger) *Handlers {
	return &Handlers{
		Admins:       admins,
		Members:      members,
		Plans:        plans,
		Payments:     payments,
		tokens:       tokens,
		secureCookie: secureCookie,
		now:          time.Now,
		log:          log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "status": "ok"})
}
