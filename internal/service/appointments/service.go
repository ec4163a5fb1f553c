package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	apptRepo "github.com/Darioantonio20/BarberPlatform/internal/infra/storage/appointment"
)

// Service covers the admin side of appointments: listing, the status
// lifecycle and the revenue summary. Creation lives in its own use case
// because it spans the cart, the catalog and the slot check.
type Service struct {
	apptRepo  AppointmentRepository
	txManager TransactionManager
	logger    Logger
}

// NewService creates a new appointments service.
func NewService(apptRepo AppointmentRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		apptRepo:  apptRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID fetches one appointment.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return appt, nil
}

// List returns appointments matching the admin filter.
//
// Examples:
//   - all active appointments: List(ctx, domain.AppointmentsFilter{})
//   - one barbershop on one date: set BarbershopID, StartDate == EndDate
//   - only pending: set Status
//   - including cancelled: IncludeInactive = true
func (s *Service) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	appointments, err := s.apptRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return appointments, nil
}

// UpdateStatus moves an appointment through the admin status flow. A move to
// cancelled requires a reason and records the cancellation timestamp. The
// read and the write share one transaction so two admins cannot race the
// same appointment into conflicting states.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, reason *string) (*domain.Appointment, error) {
	if !isKnownStatus(status) {
		s.logger.Warn("UpdateStatus: unknown status=%s for id=%d", status, id)
		return nil, ErrInvalidStatus
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		appt, err := s.apptRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - fetch appointment: %v", ErrInternal, err)
		}

		if !appt.CanTransitionTo(status) {
			s.logger.Warn("UpdateStatus: id=%d transition %s -> %s rejected", id, appt.Status, status)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, status)
		}

		if status == domain.StatusCancelled {
			if reason == nil || *reason == "" {
				return ErrReasonRequired
			}
			if err := s.apptRepo.Cancel(ctx, id, *reason); err != nil {
				return fmt.Errorf("%w: UpdateStatus - cancel: %v", ErrInternal, err)
			}
			return nil
		}

		if err := s.apptRepo.UpdateStatus(ctx, id, status); err != nil {
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: refetch failed for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - refetch: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved to %s", id, status)
	return appt, nil
}

// RevenueSummary sums the totals of completed appointments, optionally
// scoped to one barbershop.
func (s *Service) RevenueSummary(ctx context.Context, barbershopID *string) (int64, error) {
	revenue, err := s.apptRepo.CompletedRevenue(ctx, barbershopID)
	if err != nil {
		s.logger.Error("RevenueSummary: repository error: %v", err)
		return 0, fmt.Errorf("%w: RevenueSummary - repository error: %v", ErrInternal, err)
	}
	return revenue, nil
}

func isKnownStatus(status domain.AppointmentStatus) bool {
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return true
	default:
		return false
	}
}
