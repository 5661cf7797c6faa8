package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	plandomain "gymdesk/internal/domain/plan"
)

type createPlanRequest struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	Features     string  `json:"features"`
}

type updatePlanRequest struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	DurationDays *int     `json:"duration_days"`
	Features     *string  `json:"features"`
}

func (h *Handlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	items, err := h.Plans.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "plans: list failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    items,
	})
}

func (h *Handlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	p, err := h.Plans.Create(r.Context(), plandomain.CreatePlanInput{
		Name:         req.Name,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Features:     req.Features,
	})
	if err != nil {
		switch {
		case errors.Is(err, plandomain.ErrDuplicatePlan),
			errors.Is(err, plandomain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeServiceError(w, err, "plans: create failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "plan created successfully",
		"planId":  p.ID,
		"data":    p,
	})
}

func (h *Handlers) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	var req updatePlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	p, err := h.Plans.Update(r.Context(), plandomain.UpdatePlanInput{
		ID:           chi.URLParam(r, "id"),
		Name:         req.Name,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Features:     req.Features,
	})
	if err != nil {
		switch {
		case errors.Is(err, plandomain.ErrPlanNotFound):
			writeError(w, http.StatusNotFound, "plan not found")
		case errors.Is(err, plandomain.ErrDuplicatePlan),
			errors.Is(err, plandomain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeServiceError(w, err, "plans: update failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "plan updated successfully",
		"data":    p,
	})
}

func (h *Handlers) DeletePlan(w http.ResponseWriter, r *http.Request) {
	err := h.Plans.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, plandomain.ErrPlanNotFound) {
			writeError(w, http.StatusNotFound, "plan not found")
			return
		}
		h.writeServiceError(w, err, "plans: delete failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "plan deleted successfully",
	})
}
