package models

// ServicePackage is a service record: one car receiving one package on
// one date.
type ServicePackage struct {
	// RecordNumber is the storage-assigned identifier.
	RecordNumber int64

	// ServiceDate is the calendar date of the service (YYYY-MM-DD).
	ServiceDate string

	// PlateNumber references an existing Car.
	PlateNumber string

	// PackageNumber references an existing Package.
	PackageNumber int64
}

// ServicePackageDetail is a ServicePackage enriched with display fields
// from the referenced Car and Package. List and get reads return this
// shape so the caller does not need follow-up lookups.
type ServicePackageDetail struct {
	ServicePackage

	DriverName   string
	CarType      string
	CarSize      CarSize
	PackageName  string
	PackagePrice Money
}
