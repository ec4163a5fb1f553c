package domain

import (
	"time"

	"github.com/Darioantonio20/BarberPlatform/pkg/types"
)

// ServiceCategory groups services in the catalog
type ServiceCategory string

const (
	CategoryHaircut   ServiceCategory = "haircut"
	CategoryBeard     ServiceCategory = "beard"
	CategoryStyling   ServiceCategory = "styling"
	CategoryTreatment ServiceCategory = "treatment"
	CategoryCombo     ServiceCategory = "combo"
)

// Service is one bookable service or fixed-price package. Packages are
// modeled identically to services for cart and display purposes.
type Service struct {
	ID              string
	Name            string
	Description     string
	Price           int64
	DurationMinutes int
	Category        ServiceCategory
	Image           string
}

// Product is a retail item sold at the shop
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Image       string
}

// Barber is a staff member clients can pick during booking
type Barber struct {
	ID              string
	Name            string
	Specialties     []string
	ExperienceYears int
	Rating          float64
	Avatar          string
	Bio             string
}

// DaySchedule is one weekday's opening window
type DaySchedule struct {
	Open   types.TimeString
	Close  types.TimeString
	Closed bool
}

// WeekSchedule holds the opening windows for every weekday
type WeekSchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday returns the schedule of the given weekday
func (w WeekSchedule) ForWeekday(d time.Weekday) DaySchedule {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{Closed: true}
	}
}

// Barbershop is one branch of the chain. The id slices reference catalog
// entries offered at this location; the cart is scoped to exactly one
// barbershop at a time.
type Barbershop struct {
	ID          string
	Name        string
	Description string
	Address     string
	Phone       string
	Image       string

	ServiceIDs []string
	PackageIDs []string
	ProductIDs []string
	BarberIDs  []string

	Hours WeekSchedule
}

// OffersService reports whether the service (or package) id is offered here
func (b *Barbershop) OffersService(id string) bool {
	for _, s := range b.ServiceIDs {
		if s == id {
			return true
		}
	}
	for _, p := range b.PackageIDs {
		if p == id {
			return true
		}
	}
	return false
}

// OffersProduct reports whether the product id is sold here
func (b *Barbershop) OffersProduct(id string) bool {
	for _, p := range b.ProductIDs {
		if p == id {
			return true
		}
	}
	return false
}

// HasBarber reports whether the barber works at this location
func (b *Barbershop) HasBarber(id string) bool {
	for _, br := range b.BarberIDs {
		if br == id {
			return true
		}
	}
	return false
}
