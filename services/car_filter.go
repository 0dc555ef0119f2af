package services

import (
	"sort"
	"strings"

	"car-rental-backend/models"
)

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortBrandAsc  = "brand-asc"
	SortBrandDesc = "brand-desc"
)

// CarFilter narrows and orders the catalogue the way the vehicles page does.
// The zero value keeps every car in id order.
type CarFilter struct {
	Brand    string
	FuelType string
	MaxPrice *float64
	Sort     string
}

func (f CarFilter) keep(car models.Car) bool {
	if f.Brand != "" && !strings.EqualFold(f.Brand, "all") && !strings.EqualFold(car.Brand(), f.Brand) {
		return false
	}
	if f.FuelType != "" && !strings.EqualFold(f.FuelType, "all") && !strings.EqualFold(car.FuelType, f.FuelType) {
		return false
	}
	if f.MaxPrice != nil && car.RentPerHour > *f.MaxPrice {
		return false
	}
	return true
}

func (f CarFilter) Apply(cars []models.Car) []models.Car {
	out := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if f.keep(car) {
			out = append(out, car)
		}
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RentPerHour < out[j].RentPerHour })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RentPerHour > out[j].RentPerHour })
	case SortBrandAsc:
		sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	case SortBrandDesc:
		sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) > strings.ToLower(out[j].Name) })
	}
	return out
}
