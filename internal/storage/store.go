// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/Aimecol/cwsms/internal/models"
)

// PackageStore is the repository for wash packages.
type PackageStore interface {
	// ListPackages returns all packages ordered by package number.
	ListPackages(ctx context.Context) ([]models.Package, error)

	// GetPackage retrieves a package by number.
	// Returns ErrNotFound if no such package exists.
	GetPackage(ctx context.Context, number int64) (*models.Package, error)

	// CreatePackage persists a new package and fills in the assigned
	// PackageNumber.
	CreatePackage(ctx context.Context, pkg *models.Package) error

	// UpdatePackage rewrites the non-key fields of an existing package.
	// Returns ErrNotFound if no such package exists; never creates.
	UpdatePackage(ctx context.Context, pkg *models.Package) error

	// DeletePackage removes a package. Returns ErrNotFound if absent,
	// ErrReferentialInUse if service records reference it.
	DeletePackage(ctx context.Context, number int64) error
}

// CarStore is the repository for customer vehicles.
type CarStore interface {
	// ListCars returns all cars ordered by plate number.
	ListCars(ctx context.Context) ([]models.Car, error)

	// GetCar retrieves a car by plate number.
	// Returns ErrNotFound if no such car exists.
	GetCar(ctx context.Context, plate string) (*models.Car, error)

	// CreateCar persists a new car under its caller-supplied plate.
	// Returns ErrDuplicateKey if the plate is already registered.
	CreateCar(ctx context.Context, car *models.Car) error

	// UpdateCar rewrites the non-key fields of an existing car; the
	// plate number is immutable. Returns ErrNotFound if absent.
	UpdateCar(ctx context.Context, car *models.Car) error

	// DeleteCar removes a car. Returns ErrNotFound if absent,
	// ErrReferentialInUse if service records reference it.
	DeleteCar(ctx context.Context, plate string) error
}

// ServicePackageStore is the repository for service records.
type ServicePackageStore interface {
	// ListServicePackages returns all service records, newest first,
	// enriched with car and package display fields.
	ListServicePackages(ctx context.Context) ([]models.ServicePackageDetail, error)

	// GetServicePackage retrieves a service record by record number.
	// Returns ErrNotFound if no such record exists.
	GetServicePackage(ctx context.Context, record int64) (*models.ServicePackageDetail, error)

	// CreateServicePackage persists a new service record and fills in
	// the assigned RecordNumber. Returns ErrReferentialViolation when
	// the plate or package does not exist.
	CreateServicePackage(ctx context.Context, sp *models.ServicePackage) error

	// UpdateServicePackage rewrites an existing service record,
	// including re-pointing it at a different car or package.
	// Returns ErrNotFound or ErrReferentialViolation accordingly.
	UpdateServicePackage(ctx context.Context, sp *models.ServicePackage) error

	// DeleteServicePackage removes a service record. Returns
	// ErrNotFound if absent, ErrReferentialInUse if payments reference it.
	DeleteServicePackage(ctx context.Context, record int64) error
}

// PaymentStore is the repository for payments.
type PaymentStore interface {
	// ListPayments returns all payments, newest first, enriched with
	// display fields reached through the service record.
	ListPayments(ctx context.Context) ([]models.PaymentDetail, error)

	// GetPayment retrieves a payment by payment number.
	// Returns ErrNotFound if no such payment exists.
	GetPayment(ctx context.Context, number int64) (*models.PaymentDetail, error)

	// CreatePayment persists a new payment and fills in the assigned
	// PaymentNumber. Returns ErrReferentialViolation when the service
	// record does not exist.
	CreatePayment(ctx context.Context, p *models.Payment) error

	// UpdatePayment rewrites an existing payment. Returns ErrNotFound
	// or ErrReferentialViolation accordingly.
	UpdatePayment(ctx context.Context, p *models.Payment) error

	// DeletePayment removes a payment. Returns ErrNotFound if absent.
	DeletePayment(ctx context.Context, number int64) error
}

// ReportStore runs the read-only analytical queries. All methods treat
// "no matching rows" as an empty result, not an error.
type ReportStore interface {
	// DailySales groups payments by calendar date, newest date first.
	// A non-empty date (YYYY-MM-DD) restricts the report to that day.
	DailySales(ctx context.Context, date string) ([]models.DailySalesRow, error)

	// MonthlyRevenue groups payments by calendar month, newest first.
	// A non-zero year restricts the report to that year.
	MonthlyRevenue(ctx context.Context, year int) ([]models.MonthlyRevenueRow, error)

	// PackagePopularity counts usage per package, most used first.
	// Packages with zero usage are included.
	PackagePopularity(ctx context.Context) ([]models.PackagePopularityRow, error)

	// CustomerFrequency counts visits per car, most frequent first.
	// Cars with zero visits are included.
	CustomerFrequency(ctx context.Context) ([]models.CustomerFrequencyRow, error)

	// RevenueByCarType aggregates revenue per vehicle type, highest
	// revenue first. Types with no activity are included.
	RevenueByCarType(ctx context.Context) ([]models.CarTypeRevenueRow, error)

	// UnpaidServices lists service records with no payment, newest
	// service date first.
	UnpaidServices(ctx context.Context) ([]models.UnpaidServiceRow, error)
}

// Store is the full persistence surface consumed by the API layer.
// The concrete implementation is constructed once at startup and passed
// in explicitly; there is no package-level connection state.
type Store interface {
	PackageStore
	CarStore
	ServicePackageStore
	PaymentStore
	ReportStore

	// Close releases any resources held by the store.
	Close() error
}
