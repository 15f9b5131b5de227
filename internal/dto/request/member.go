package request

import "time"

type CreateMemberRequest struct {
	Name               string    `json:"name" validate:"required"`
	Status             string    `json:"status" validate:"omitempty,oneof=Active Inactive"`
	IsTrialUser        bool      `json:"is_trial_user"`
	ConvertedFromTrial bool      `json:"converted_from_trial"`
	JoinDate           time.Time `json:"join_date" validate:"required"`
}

type UpdateMemberStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive"`
}
