package get_barbershop

import "github.com/Darioantonio20/BarberPlatform/internal/domain"

// ScheduleResponse is one weekday's window.
type ScheduleResponse struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// HoursResponse is the weekly schedule.
type HoursResponse struct {
	Monday    ScheduleResponse `json:"monday"`
	Tuesday   ScheduleResponse `json:"tuesday"`
	Wednesday ScheduleResponse `json:"wednesday"`
	Thursday  ScheduleResponse `json:"thursday"`
	Friday    ScheduleResponse `json:"friday"`
	Saturday  ScheduleResponse `json:"saturday"`
	Sunday    ScheduleResponse `json:"sunday"`
}

// ServiceResponse is a service or package offered at the location.
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
	Category        string `json:"category"`
	Image           string `json:"image,omitempty"`
}

// ProductResponse is a retail product sold at the location.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image,omitempty"`
}

// BarberResponse is one barber working at the location.
type BarberResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialties     []string `json:"specialties"`
	ExperienceYears int      `json:"experienceYears"`
	Rating          float64  `json:"rating"`
	Avatar          string   `json:"avatar,omitempty"`
	Bio             string   `json:"bio,omitempty"`
}

// BarbershopResponse is the full location page payload.
type BarbershopResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Address     string            `json:"address"`
	Phone       string            `json:"phone"`
	Image       string            `json:"image"`
	Hours       HoursResponse     `json:"hours"`
	Services    []ServiceResponse `json:"services"`
	Packages    []ServiceResponse `json:"packages"`
	Products    []ProductResponse `json:"products"`
	Barbers     []BarberResponse  `json:"barbers"`
}

func scheduleFromDomain(day domain.DaySchedule) ScheduleResponse {
	if day.Closed {
		return ScheduleResponse{Closed: true}
	}
	return ScheduleResponse{
		Open:  day.Open.String(),
		Close: day.Close.String(),
	}
}

func servicesFromDomain(services []*domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i, s := range services {
		out[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Category:        string(s.Category),
			Image:           s.Image,
		}
	}
	return out
}

func productsFromDomain(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
		}
	}
	return out
}

func barbersFromDomain(barbers []*domain.Barber) []BarberResponse {
	out := make([]BarberResponse, len(barbers))
	for i, b := range barbers {
		out[i] = BarberResponse{
			ID:              b.ID,
			Name:            b.Name,
			Specialties:     b.Specialties,
			ExperienceYears: b.ExperienceYears,
			Rating:          b.Rating,
			Avatar:          b.Avatar,
			Bio:             b.Bio,
		}
	}
	return out
}

// FromDomain assembles the location page from the barbershop and its
// catalog cross-references.
func FromDomain(
	shop *domain.Barbershop,
	services, packages []*domain.Service,
	products []*domain.Product,
	barbers []*domain.Barber,
) *BarbershopResponse {
	return &BarbershopResponse{
		ID:          shop.ID,
		Name:        shop.Name,
		Description: shop.Description,
		Address:     shop.Address,
		Phone:       shop.Phone,
		Image:       shop.Image,
		Hours: HoursResponse{
			Monday:    scheduleFromDomain(shop.Hours.Monday),
			Tuesday:   scheduleFromDomain(shop.Hours.Tuesday),
			Wednesday: scheduleFromDomain(shop.Hours.Wednesday),
			Thursday:  scheduleFromDomain(shop.Hours.Thursday),
			Friday:    scheduleFromDomain(shop.Hours.Friday),
			Saturday:  scheduleFromDomain(shop.Hours.Saturday),
			Sunday:    scheduleFromDomain(shop.Hours.Sunday),
		},
		Services: servicesFromDomain(services),
		Packages: servicesFromDomain(packages),
		Products: productsFromDomain(products),
		Barbers:  barbersFromDomain(barbers),
	}
}
