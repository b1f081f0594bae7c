package dto

import "time"

type CodeRequest struct {
	Code     string `json:"code" validate:"required"`
	Language string `json:"language" validate:"required"`
}

type ExplainCodeRequest struct {
	Code     string `json:"code" validate:"required"`
	Language string `json:"language" validate:"required"`
	Level    string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

type AIResponse struct {
	Result string `json:"result"`
	Cached bool   `json:"cached"`
}

type AIInteractionResponse struct {
	Id        uint      `json:"id"`
	Type      string    `json:"type"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}
