package models

// CarSize is the closed set of accepted vehicle sizes. The source of
// truth is the storage CHECK constraint; this type exists so callers
// can validate before a round trip.
type CarSize string

const (
	CarSizeSmall  CarSize = "Small"
	CarSizeMedium CarSize = "Medium"
	CarSizeLarge  CarSize = "Large"
)

// Valid reports whether the size is one of the accepted values.
func (s CarSize) Valid() bool {
	switch s {
	case CarSizeSmall, CarSizeMedium, CarSizeLarge:
		return true
	}
	return false
}

// Car represents a customer vehicle.
type Car struct {
	// PlateNumber is the caller-supplied primary key. It is immutable:
	// updates never touch it.
	PlateNumber string

	// CarType is a free-form vehicle category (e.g., "Sedan", "SUV").
	CarType string

	// CarSize is one of Small, Medium, Large.
	CarSize CarSize

	// DriverName is the name of the regular driver or owner.
	DriverName string

	// PhoneNumber is the driver's contact number.
	PhoneNumber string
}
