package list_barbershops

import "github.com/Darioantonio20/BarberPlatform/internal/domain"

type CatalogProvider interface {
	Barbershops() []*domain.Barbershop
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
