package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	memberdomain "gymdesk/internal/domain/member"
)

type createMemberRequest struct {
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Status    string  `json:"status"`
}

type updateMemberRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"`
	EndDate  *string `json:"end_date"`
}

type memberResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type memberListResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []memberResponse `json:"data"`
}

func (h *Handlers) toMemberResponse(m memberdomain.Member) memberResponse {
	return memberResponse{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Phone:     m.Phone,
		StartDate: formatDate(m.StartDate),
		EndDate:   formatDatePtr(m.EndDate),
		Status:    m.EffectiveStatus(h.now()),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	items, err := h.Members.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "members: list failed")
		return
	}

	data := make([]memberResponse, 0, len(items))
	for _, m := range items {
		data = append(data, h.toMemberResponse(m))
	}

	writeJSON(w, http.StatusOK, memberListResponse{Success: true, Count: len(data), Data: data})
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	m, err := h.Members.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, memberdomain.ErrMemberNotFound) {
			writeError(w, http.StatusNotFound, "member not found")
			return
		}
		h.writeServiceError(w, err, "members: get failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    h.toMemberResponse(*m),
	})
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	var startDate time.Time
	if req.StartDate != "" {
		parsed, err := parseDateRequired(req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start_date")
			return
		}
		startDate = parsed
	}

	endDate, err := parseDateOptionalPtr(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	m, err := h.Members.Create(r.Context(), memberdomain.CreateMemberInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, memberdomain.ErrDuplicateMember),
			errors.Is(err, memberdomain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeServiceError(w, err, "members: create failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "member added successfully",
		"memberId": m.ID,
		"data":     h.toMemberResponse(*m),
	})
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req updateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	endDate, err := parseDateOptionalPtr(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	m, err := h.Members.Update(r.Context(), memberdomain.UpdateMemberInput{
		ID:       chi.URLParam(r, "id"),
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   req.Status,
		EndDate:  endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, memberdomain.ErrMemberNotFound):
			writeError(w, http.StatusNotFound, "member not found")
		case errors.Is(err, memberdomain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeServiceError(w, err, "members: update failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "member updated successfully",
		"data":    h.toMemberResponse(*m),
	})
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	err := h.Members.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, memberdomain.ErrMemberNotFound):
			writeError(w, http.StatusNotFound, "member not found")
		case errors.Is(err, memberdomain.ErrMemberHasPayments):
			writeError(w, http.StatusConflict, err.Error())
		default:
			h.writeServiceError(w, err, "members: delete failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "member deleted successfully",
	})
}
