package plan

import "errors"

var (
	ErrValidation = errors.New("invalid input")

	ErrPlanNotFound  = errors.New("plan not found")
	ErrDuplicatePlan = errors.New("plan name already exists")
)
