package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus represents the status of a simulated payment.
type PaymentStatus string

const (
	PaymentStatusAccepted PaymentStatus = "accepted"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Payment records a run of the payment wizard. Payments are simulated: the
// card is validated and the attempt recorded, but no funds move. Only the
// masked card number is stored; the CVV is never persisted.
type Payment struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID       `json:"userId" gorm:"type:char(36);not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	CardNumber  string          `json:"cardNumber" gorm:"size:20;not null"`
	CardName    string          `json:"cardName" gorm:"size:255"`
	CardExpiry  string          `json:"cardExpiry" gorm:"size:10"`
	ProgramType string          `json:"programType" gorm:"size:100"`
	Status      PaymentStatus   `json:"status" gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
