package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/drufus/serenity/internal/domain"
	bookingRepo "github.com/drufus/serenity/internal/infra/storage/booking"
	"github.com/drufus/serenity/internal/service/bookings/models"
)

// Service handles post-booking lifecycle reads and transitions: the
// confirmation page, the reservation-management page and agreement signing.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a bookings service
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByCode fetches a booking and its add-on lines by confirmation code
func (s *Service) GetByCode(ctx context.Context, code string) (*models.BookingResponse, error) {
	booking, addons, err := s.fetch(ctx, "GetByCode", code)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking, addons), nil
}

// ConfirmByCode transitions a pending booking to confirmed. The frontend
// calls it when the confirmation page is first viewed; on an already
// confirmed (or otherwise settled) booking it is a no-op, so repeated page
// visits are harmless.
func (s *Service) ConfirmByCode(ctx context.Context, code string) (*models.BookingResponse, error) {
	booking, addons, err := s.fetch(ctx, "ConfirmByCode", code)
	if err != nil {
		return nil, err
	}

	if booking.CanBeConfirmed() {
		if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusConfirmed); err != nil {
			s.logger.Error("ConfirmByCode: failed to confirm booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: ConfirmByCode - update status: %v", ErrInternal, err)
		}
		booking.Status = domain.StatusConfirmed
		s.logger.Info("ConfirmByCode: booking id=%d confirmed", booking.ID)
	}

	return models.FromDomainBooking(booking, addons), nil
}

// SignAgreement records the rental-agreement signature once. Re-signing an
// already signed agreement keeps the original timestamp.
func (s *Service) SignAgreement(ctx context.Context, code string) (*models.BookingResponse, error) {
	booking, addons, err := s.fetch(ctx, "SignAgreement", code)
	if err != nil {
		return nil, err
	}

	if !booking.AgreementSigned {
		signedAt := s.timeProvider.Now()
		if err := s.bookingRepo.UpdateAgreement(ctx, booking.ID, true, signedAt); err != nil {
			s.logger.Error("SignAgreement: failed to sign agreement for booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: SignAgreement - update agreement: %v", ErrInternal, err)
		}
		booking.AgreementSigned = true
		booking.AgreementSignedAt = &signedAt
		s.logger.Info("SignAgreement: agreement signed for booking id=%d", booking.ID)
	}

	return models.FromDomainBooking(booking, addons), nil
}

func (s *Service) fetch(ctx context.Context, method, code string) (*domain.Booking, []domain.BookingAddon, error) {
	booking, err := s.bookingRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking code=%s not found", method, code)
			return nil, nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for code=%s: %v", method, code, err)
		return nil, nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	addons, err := s.bookingRepo.GetAddonsByBookingID(ctx, booking.ID)
	if err != nil {
		s.logger.Error("%s: failed to fetch addons for booking id=%d: %v", method, booking.ID, err)
		return nil, nil, fmt.Errorf("%w: %s - fetch addons: %v", ErrInternal, method, err)
	}

	return booking, addons, nil
}
