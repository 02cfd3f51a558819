package model

type AttendanceLog struct {
	DTO
	EventId       uint        `gorm:"not null;index" json:"eventId"`
	Event         Event       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ParticipantId uint        `gorm:"not null;index" json:"participantId"`
	Participant   Participant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"participant"`
}

type ScanInput struct {
	Code            string `json:"code"`
	EventId         *uint  `json:"eventId"`
	ParticipantCode string `json:"participantCode"`
}

// ScanRequest adalah input yang sudah dinormalisasi oleh validate layer.
type ScanRequest struct {
	EventId         *uint
	ParticipantCode string
}

type ScanResult struct {
	ParticipantName string `json:"participantName"`
	ParticipantCode string `json:"participantCode"`
	EventId         uint   `json:"eventId"`
	EventName       string `json:"eventName"`
	TableNumber     *int   `json:"tableNumber"`
	SeatNumber      *int   `json:"seatNumber"`
	TotalScans      int64  `json:"totalScans"`
}

type AttendanceFilter struct {
	EventId       *uint `query:"eventId"`
	ParticipantId *uint `query:"participantId"`
	Limit         *int  `query:"limit"`
	Page          *int  `query:"page"`
}
