package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "hhcc/internal/errors"
	"hhcc/internal/model"
	"hhcc/internal/repository"
)

// PaymentInput carries the payment wizard fields.
type PaymentInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	CardNumber  string
	CardName    string
	CardExpiry  string
	CardCVV     string
	ProgramType string
}

// PaymentService simulates the payment wizard: card details are validated
// and the attempt is recorded, but no funds move.
type PaymentService interface {
	Process(ctx context.Context, input PaymentInput) (*model.Payment, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error)
}

type paymentService struct {
	repo      repository.PaymentRepository
	userRepo  repository.UserRepository
	validator *CardValidator
}

// NewPaymentService creates a new payment service.
func NewPaymentService(repo repository.PaymentRepository, userRepo repository.UserRepository) PaymentService {
	return &paymentService{
		repo:      repo,
		userRepo:  userRepo,
		validator: NewCardValidator(),
	}
}

// Process validates and records one wizard run. Failed validation still
// persists a failed payment record so the attempt is auditable.
func (s *paymentService) Process(ctx context.Context, input PaymentInput) (*model.Payment, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	payment := &model.Payment{
		UserID:      input.UserID,
		Amount:      input.Amount,
		CardNumber:  s.validator.MaskCardNumber(input.CardNumber),
		CardName:    input.CardName,
		CardExpiry:  input.CardExpiry,
		ProgramType: input.ProgramType,
		Status:      model.PaymentStatusAccepted,
	}

	if err := s.validator.ValidateCard(input.CardNumber, input.CardExpiry, input.CardCVV); err != nil {
		payment.Status = model.PaymentStatusFailed
		_ = s.repo.Create(ctx, payment)
		return payment, err
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error) {
	payments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	return payments, nil
}
