package get_barbershop

import "github.com/Darioantonio20/BarberPlatform/internal/domain"

type CatalogProvider interface {
	GetBarbershop(id string) (*domain.Barbershop, error)
	ServicesAt(barbershopID string) ([]*domain.Service, error)
	PackagesAt(barbershopID string) ([]*domain.Service, error)
	ProductsAt(barbershopID string) ([]*domain.Product, error)
	BarbersAt(barbershopID string) ([]*domain.Barber, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
