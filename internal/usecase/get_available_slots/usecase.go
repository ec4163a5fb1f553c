package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	"github.com/Darioantonio20/BarberPlatform/internal/infra/catalog"
	"github.com/Darioantonio20/BarberPlatform/pkg/ptr"
	"github.com/Darioantonio20/BarberPlatform/pkg/types"
)

// UseCase computes the available slots for one barber at one barbershop on
// one date.
type UseCase struct {
	catalog      CatalogProvider
	apptRepo     AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case with the production clock.
func NewUseCase(
	catalogProvider CatalogProvider,
	apptRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalogProvider,
		apptRepo:     apptRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute resolves business hours and booked appointments and generates the
// slot sequence. A day the barbershop is closed yields an empty sequence,
// not an error.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barbershop=%s, service=%s, barber=%s, date=%s",
		req.BarbershopID, req.ServiceID, req.BarberID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s rejected: %v", req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	shop, err := uc.catalog.GetBarbershop(req.BarbershopID)
	if err != nil {
		if errors.Is(err, catalog.ErrBarbershopNotFound) {
			uc.logger.Warn("GetAvailableSlots: barbershop=%s not found", req.BarbershopID)
			return nil, ErrBarbershopNotFound
		}
		return nil, fmt.Errorf("%w: failed to get barbershop: %v", ErrInternal, err)
	}

	service, err := uc.catalog.GetService(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !shop.OffersService(req.ServiceID) {
		uc.logger.Warn("GetAvailableSlots: service=%s not offered at barbershop=%s", req.ServiceID, req.BarbershopID)
		return nil, ErrServiceNotOffered
	}

	if _, err := uc.catalog.GetBarber(req.BarberID); err != nil {
		if errors.Is(err, catalog.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !shop.HasBarber(req.BarberID) {
		uc.logger.Warn("GetAvailableSlots: barber=%s not at barbershop=%s", req.BarberID, req.BarbershopID)
		return nil, ErrBarberNotAtBarbershop
	}

	response := &Response{
		Date:            req.Date,
		BarbershopID:    req.BarbershopID,
		ServiceID:       req.ServiceID,
		BarberID:        req.BarberID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []domain.TimeSlot{},
	}

	hours := shop.Hours.ForWeekday(req.Date.Weekday())
	if hours.Closed {
		uc.logger.Info("GetAvailableSlots: barbershop=%s closed on %s", req.BarbershopID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	booked, err := uc.bookedLabels(ctx, req)
	if err != nil {
		return nil, err
	}

	slots, err := generateTimeSlots(hours.Open, hours.Close, service.DurationMinutes, booked, req.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}
	response.Slots = slots

	uc.logger.Info("GetAvailableSlots: generated %d slots for barbershop=%s on %s",
		len(slots), req.BarbershopID, req.Date.Format(domain.DateFormat))
	return response, nil
}

// bookedLabels fetches the active appointments for the barber on the date
// and collects their start-time labels. When called inside a transaction
// (the create flow re-checks the slot there) the rows come back locked.
func (uc *UseCase) bookedLabels(ctx context.Context, req *Request) (map[types.TimeString]struct{}, error) {
	appointments, err := uc.apptRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		BarbershopID: ptr.Ptr(req.BarbershopID),
		BarberID:     ptr.Ptr(req.BarberID),
		StartDate:    ptr.Ptr(req.Date),
		EndDate:      ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
	}

	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		booked[appt.StartTime] = struct{}{}
	}
	return booked, nil
}
