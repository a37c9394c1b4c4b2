package dto

import "tosraider/internal/domain/entity"

type GenerateActionRequest struct {
	ClauseID   string `json:"clause_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	ActionType string `json:"action_type" validate:"required,oneof=cancel opt-out refund delete-data" example:"cancel" enums:"cancel,opt-out,refund,delete-data"`
}

type GenerateActionResponse struct {
	Status string                `json:"status" example:"success"`
	Action entity.LoopholeAction `json:"action"`
}

type ListActionsResponse struct {
	Actions []entity.LoopholeAction `json:"actions"`
}
