package model

import "time"

type Event struct {
	DTO
	Name           string     `gorm:"not null" validate:"required" json:"name"`
	Slug           string     `gorm:"not null;uniqueIndex" json:"slug"`
	Location       *string    `json:"location"`
	StartsAt       *time.Time `json:"startsAt"`
	EndsAt         *time.Time `json:"endsAt"`
	IsActive       bool       `gorm:"default:true" json:"isActive"`
	BannerUrl      *string    `json:"bannerUrl"`
	BannerPublicId *string    `json:"bannerPublicId"`
}

type CreateEventInput struct {
	Name           string  `json:"name" validate:"required"`
	Location       *string `json:"location"`
	StartsAt       *string `json:"startsAt"`
	EndsAt         *string `json:"endsAt"`
	BannerUrl      *string `json:"bannerUrl"`
	BannerPublicId *string `json:"bannerPublicId"`
}

type UpdateEventInput struct {
	Name           *string `json:"name"`
	Location       *string `json:"location"`
	StartsAt       *string `json:"startsAt"`
	EndsAt         *string `json:"endsAt"`
	BannerUrl      *string `json:"bannerUrl"`
	BannerPublicId *string `json:"bannerPublicId"`
}

type EventFilter struct {
	Search   *string `query:"search"`
	IsActive *bool   `query:"isActive"`
	Limit    *int    `query:"limit"`
	Page     *int    `query:"page"`
}

type EventStats struct {
	EventId             uint  `json:"eventId"`
	TotalParticipants   int64 `json:"totalParticipants"`
	ScannedParticipants int64 `json:"scannedParticipants"`
	TotalScans          int64 `json:"totalScans"`
}
