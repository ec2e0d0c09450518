package model

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is a care booking created through the scheduling form.
// IDs are strings of the form "sched_<unix-millis>". Date is the ISO form
// (YYYY-MM-DD) submitted by the booking form, so lexical ordering matches
// chronological ordering.
type Schedule struct {
	ID          string    `json:"id" gorm:"size:40;primaryKey"`
	UserID      uuid.UUID `json:"userId" gorm:"type:char(36);not null;index"`
	MemberID    string    `json:"memberId" gorm:"size:40"`
	MemberName  string    `json:"memberName" gorm:"size:255;not null"`
	MemberType  string    `json:"memberType" gorm:"size:20;not null"`
	Date        string    `json:"date" gorm:"size:10;not null;index"`
	DropOffTime string    `json:"dropOffTime" gorm:"size:10;not null"`
	PickupTime  string    `json:"pickupTime" gorm:"size:10;not null"`
	Notes       string    `json:"notes" gorm:"type:text"`
	ProgramType string    `json:"programType" gorm:"size:100;not null"`
	CreatedAt   time.Time `json:"created_at"`
}
