package model

import "gorm.io/datatypes"

type Participant struct {
	DTO
	EventId         uint              `gorm:"not null;uniqueIndex:idx_participant_event_code" json:"eventId"`
	Event           Event             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ParticipantCode string            `gorm:"not null;uniqueIndex:idx_participant_event_code" validate:"required" json:"participantCode"`
	FullName        string            `gorm:"not null" validate:"required" json:"fullName"`
	Email           *string           `json:"email"`
	Phone           *string           `json:"phone"`
	Metadata        datatypes.JSONMap `json:"metadata"`
}

type CreateParticipantInput struct {
	EventId         uint    `json:"eventId" validate:"required"`
	ParticipantCode string  `json:"participantCode" validate:"required"`
	FullName        string  `json:"fullName" validate:"required"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	Gender          *string `json:"gender" validate:"omitempty,oneof=L P"`
}

type UpdateParticipantInput struct {
	ParticipantCode *string `json:"participantCode"`
	FullName        *string `json:"fullName"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	Gender          *string `json:"gender" validate:"omitempty,oneof=L P"`
}

type ParticipantFilter struct {
	EventId *uint   `query:"eventId"`
	Search  *string `query:"search"`
	Limit   *int    `query:"limit"`
	Page    *int    `query:"page"`
}
