// Package catalog is the static catalog provider: locations, services,
// packages, products and barbers with their id cross-references. The data is
// fixed at build time; there is no catalog administration surface.
package catalog

import (
	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// Catalog serves read-only lookups over the fixed chain data.
type Catalog struct {
	barbershops map[string]*domain.Barbershop
	services    map[string]*domain.Service
	products    map[string]*domain.Product
	barbers     map[string]*domain.Barber

	// Insertion order preserved for stable listings
	barbershopOrder []string
}

// New builds the catalog from the fixed data set.
func New() *Catalog {
	c := &Catalog{
		barbershops: make(map[string]*domain.Barbershop),
		services:    make(map[string]*domain.Service),
		products:    make(map[string]*domain.Product),
		barbers:     make(map[string]*domain.Barber),
	}

	for i := range servicesData {
		c.services[servicesData[i].ID] = &servicesData[i]
	}
	for i := range productsData {
		c.products[productsData[i].ID] = &productsData[i]
	}
	for i := range barbersData {
		c.barbers[barbersData[i].ID] = &barbersData[i]
	}
	for i := range barbershopsData {
		c.barbershops[barbershopsData[i].ID] = &barbershopsData[i]
		c.barbershopOrder = append(c.barbershopOrder, barbershopsData[i].ID)
	}

	return c
}

// Barbershops lists every location in catalog order.
func (c *Catalog) Barbershops() []*domain.Barbershop {
	out := make([]*domain.Barbershop, 0, len(c.barbershopOrder))
	for _, id := range c.barbershopOrder {
		out = append(out, c.barbershops[id])
	}
	return out
}

// GetBarbershop returns the location with the given id.
func (c *Catalog) GetBarbershop(id string) (*domain.Barbershop, error) {
	b, ok := c.barbershops[id]
	if !ok {
		return nil, ErrBarbershopNotFound
	}
	return b, nil
}

// GetService returns the service or package with the given id.
func (c *Catalog) GetService(id string) (*domain.Service, error) {
	s, ok := c.services[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	return s, nil
}

// GetProduct returns the product with the given id.
func (c *Catalog) GetProduct(id string) (*domain.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// GetBarber returns the barber with the given id.
func (c *Catalog) GetBarber(id string) (*domain.Barber, error) {
	b, ok := c.barbers[id]
	if !ok {
		return nil, ErrBarberNotFound
	}
	return b, nil
}

// ServicesAt lists the services offered at a location, in catalog order.
func (c *Catalog) ServicesAt(barbershopID string) ([]*domain.Service, error) {
	b, err := c.GetBarbershop(barbershopID)
	if err != nil {
		return nil, err
	}
	return c.collectServices(b.ServiceIDs), nil
}

// PackagesAt lists the packages offered at a location.
func (c *Catalog) PackagesAt(barbershopID string) ([]*domain.Service, error) {
	b, err := c.GetBarbershop(barbershopID)
	if err != nil {
		return nil, err
	}
	return c.collectServices(b.PackageIDs), nil
}

// ProductsAt lists the products sold at a location.
func (c *Catalog) ProductsAt(barbershopID string) ([]*domain.Product, error) {
	b, err := c.GetBarbershop(barbershopID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Product, 0, len(b.ProductIDs))
	for _, id := range b.ProductIDs {
		if p, ok := c.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// BarbersAt lists the barbers working at a location.
func (c *Catalog) BarbersAt(barbershopID string) ([]*domain.Barber, error) {
	b, err := c.GetBarbershop(barbershopID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Barber, 0, len(b.BarberIDs))
	for _, id := range b.BarberIDs {
		if br, ok := c.barbers[id]; ok {
			out = append(out, br)
		}
	}
	return out, nil
}

func (c *Catalog) collectServices(ids []string) []*domain.Service {
	out := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := c.services[id]; ok {
			out = append(out, s)
		}
	}
	return out
}
