package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	"github.com/Darioantonio20/BarberPlatform/internal/infra/catalog"
	"github.com/Darioantonio20/BarberPlatform/pkg/ptr"
	"github.com/Darioantonio20/BarberPlatform/pkg/types"
)

// UseCase books an appointment out of the session's cart.
type UseCase struct {
	apptRepo     AppointmentRepository
	cartService  CartService
	catalog      CatalogProvider
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case with the production clock.
func NewUseCase(
	apptRepo AppointmentRepository,
	cartService CartService,
	catalogProvider CatalogProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		cartService:  cartService,
		catalog:      catalogProvider,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the booking form, snapshots the session's cart and
// persists the appointment. The business-hours check, the booked-slot
// re-check and the insert run in one serializable transaction so two
// sessions racing for the same slot cannot both win. On success the
// session's cart is cleared.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: session=%s, barbershop=%s, service=%s, barber=%s, date=%s, time=%s",
		req.SessionID, req.BarbershopID, req.ServiceID, req.BarberID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	if req.BarbershopID == "" {
		return nil, fmt.Errorf("%w: barbershopId is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	if fieldErrs := validateForm(req, now); len(fieldErrs) > 0 {
		uc.logger.Warn("CreateAppointment: session=%s form rejected with %d violations", req.SessionID, len(fieldErrs))
		return nil, &ValidationErrors{Fields: fieldErrs}
	}

	if err := validatePaymentMethod(req.PaymentMethod); err != nil {
		uc.logger.Warn("CreateAppointment: session=%s payment method %q rejected", req.SessionID, req.PaymentMethod)
		return nil, err
	}

	shop, service, err := uc.resolveCatalog(req)
	if err != nil {
		return nil, err
	}

	cart, err := uc.cartService.Get(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("CreateAppointment: session=%s failed to load cart: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}
	if !cart.IsEmpty() && cart.BarbershopID != req.BarbershopID {
		uc.logger.Warn("CreateAppointment: session=%s cart belongs to barbershop=%s, request targets %s",
			req.SessionID, cart.BarbershopID, req.BarbershopID)
		return nil, fmt.Errorf("%w: cart belongs to another barbershop", ErrInvalidInput)
	}

	total := cart.Total
	if cart.IsEmpty() {
		total = service.Price
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		hours := shop.Hours.ForWeekday(req.Date.Weekday())
		if hours.Closed {
			uc.logger.Warn("CreateAppointment: barbershop=%s closed on %s", req.BarbershopID, req.Date.Format(domain.DateFormat))
			return ErrBarbershopClosed
		}

		if err := validateSlotFits(req.StartTime, service.DurationMinutes, hours, req.Date, now); err != nil {
			return err
		}

		// Locks the day's rows (FOR UPDATE) so a concurrent create serializes
		booked, err := uc.apptRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{
			BarbershopID: ptr.Ptr(req.BarbershopID),
			BarberID:     ptr.Ptr(req.BarberID),
			StartDate:    ptr.Ptr(req.Date),
			EndDate:      ptr.Ptr(req.Date),
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to fetch appointments: %v", err)
			return fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
		}

		for _, appt := range booked {
			if appt.IsActive() && appt.StartTime.Equal(req.StartTime) {
				uc.logger.Warn("CreateAppointment: slot %s on %s already taken for barber=%s",
					req.StartTime, req.Date.Format(domain.DateFormat), req.BarberID)
				return ErrSlotNotAvailable
			}
		}

		appt := &domain.Appointment{
			SessionID:       req.SessionID,
			BarbershopID:    req.BarbershopID,
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ClientName:      req.ClientName,
			ClientEmail:     req.ClientEmail,
			ClientPhone:     req.ClientPhone,
			Notes:           req.Notes,
			Items:           cart.Items,
			PaymentMethod:   req.PaymentMethod,
			Total:           total,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The appointment holds the snapshot now; a failed clear only leaves a
	// stale cart behind, it must not undo the booking.
	if err := uc.cartService.Clear(ctx, req.SessionID); err != nil {
		uc.logger.Error("CreateAppointment: session=%s failed to clear cart after booking id=%d: %v",
			req.SessionID, result.ID, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for session=%s", result.ID, req.SessionID)
	return toResponse(result), nil
}

func (uc *UseCase) resolveCatalog(req *Request) (*domain.Barbershop, *domain.Service, error) {
	shop, err := uc.catalog.GetBarbershop(req.BarbershopID)
	if err != nil {
		if errors.Is(err, catalog.ErrBarbershopNotFound) {
			uc.logger.Warn("CreateAppointment: barbershop=%s not found", req.BarbershopID)
			return nil, nil, ErrBarbershopNotFound
		}
		return nil, nil, fmt.Errorf("%w: failed to get barbershop: %v", ErrInternal, err)
	}

	service, err := uc.catalog.GetService(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service=%s not found", req.ServiceID)
			return nil, nil, ErrServiceNotFound
		}
		return nil, nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !shop.OffersService(req.ServiceID) {
		uc.logger.Warn("CreateAppointment: service=%s not offered at barbershop=%s", req.ServiceID, req.BarbershopID)
		return nil, nil, ErrServiceNotOffered
	}

	if _, err := uc.catalog.GetBarber(req.BarberID); err != nil {
		if errors.Is(err, catalog.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber=%s not found", req.BarberID)
			return nil, nil, ErrBarberNotFound
		}
		return nil, nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !shop.HasBarber(req.BarberID) {
		uc.logger.Warn("CreateAppointment: barber=%s not at barbershop=%s", req.BarberID, req.BarbershopID)
		return nil, nil, ErrBarberNotAtBarbershop
	}

	return shop, service, nil
}

// validateSlotFits checks the requested slot against the day's window: it
// must start no earlier than open, finish no later than close, and on the
// current day start no earlier than the wall clock.
func validateSlotFits(start types.TimeString, durationMinutes int, hours domain.DaySchedule, date, now time.Time) error {
	if start.IsBefore(hours.Open) {
		return ErrSlotNotAvailable
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return ErrSlotNotAvailable
	}
	if end.IsAfter(hours.Close) {
		return ErrSlotNotAvailable
	}

	if domain.IsSameDay(date, now) && start.IsBefore(types.NewTimeString(now)) {
		return ErrSlotNotAvailable
	}

	return nil
}
