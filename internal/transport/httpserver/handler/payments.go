package handler

import (
	"errors"
	"net/http"

	paymentdomain "gymdesk/internal/domain/payment"
)

type addPaymentRequest struct {
	MemberID      string  `json:"member_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	DurationDays  int     `json:"duration_days"`
	Remarks       string  `json:"remarks"`
}

// AddPayment invokes the membership ledger: one transaction persists the
// payment and moves the member's end date.
func (h *Handlers) AddPayment(w http.ResponseWriter, r *http.Request) {
	var req addPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	result, err := h.Payments.RecordPayment(r.Context(), paymentdomain.RecordPaymentInput{
		MemberID:      req.MemberID,
		Amount:        req.Amount,
		Method:        req.PaymentMethod,
		ExtensionDays: req.DurationDays,
		Remarks:       req.Remarks,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentdomain.ErrMemberNotFound):
			writeError(w, http.StatusNotFound, "member not found")
		case errors.Is(err, paymentdomain.ErrValidation),
			errors.Is(err, paymentdomain.ErrUnknownMethod):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeServiceError(w, err, "payments: record failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":      true,
		"message":      "payment recorded and membership extended",
		"new_end_date": formatDate(result.NewEndDate),
		"paymentId":    result.PaymentID,
	})
}

func (h *Handlers) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	memberID := r.URL.Query().Get("member_id")

	history, err := h.Payments.History(r.Context(), memberID)
	if err != nil {
		h.writeServiceError(w, err, "payments: history failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(history),
		"data":    history,
	})
}

func (h *Handlers) Revenue(w http.ResponseWriter, r *http.Request) {
	total, err := h.Payments.TotalRevenue(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "payments: revenue failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"total_revenue": total,
	})
}
