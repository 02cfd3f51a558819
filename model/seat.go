package model

type Seat struct {
	DTO
	EventId     uint  `gorm:"not null;uniqueIndex:idx_seat_event_table_seat" json:"eventId"`
	Event       Event `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	TableNumber int   `gorm:"not null;uniqueIndex:idx_seat_event_table_seat" validate:"required,min=1" json:"tableNumber"`
	SeatNumber  int   `gorm:"not null;uniqueIndex:idx_seat_event_table_seat" validate:"required,min=1" json:"seatNumber"`
}

// SeatAssignment memetakan peserta ke kursi, satu-satu per event.
// Unique index di seat_id dan participant_id menjaga bijeksi di level DB.
type SeatAssignment struct {
	DTO
	EventId       uint        `gorm:"not null;uniqueIndex:idx_assignment_event_seat;uniqueIndex:idx_assignment_event_participant" json:"eventId"`
	SeatId        uint        `gorm:"not null;uniqueIndex:idx_assignment_event_seat" json:"seatId"`
	Seat          Seat        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"seat"`
	ParticipantId uint        `gorm:"not null;uniqueIndex:idx_assignment_event_participant" json:"participantId"`
	Participant   Participant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"participant"`
}

type AssignSeatInput struct {
	ParticipantCode string `json:"participantCode" validate:"required"`
	TableNumber     int    `json:"tableNumber" validate:"required,min=1"`
	SeatNumber      int    `json:"seatNumber" validate:"required,min=1"`
}

type UnassignSeatInput struct {
	TableNumber int `json:"tableNumber" validate:"required,min=1"`
	SeatNumber  int `json:"seatNumber" validate:"required,min=1"`
}

type SeatMapRow struct {
	TableNumber     int     `json:"tableNumber"`
	SeatNumber      int     `json:"seatNumber"`
	ParticipantId   *uint   `json:"participantId"`
	ParticipantName *string `json:"participantName"`
	ParticipantCode *string `json:"participantCode"`
}
