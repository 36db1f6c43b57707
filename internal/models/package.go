package models

// Package represents a wash service offering.
type Package struct {
	// PackageNumber is the storage-assigned identifier. Numbers are
	// monotonic and never reused, even after deletion.
	PackageNumber int64

	// PackageName is the display name (e.g., "Basic Wash").
	PackageName string

	// PackageDescription is optional free text.
	PackageDescription string

	// PackagePrice is the non-negative list price.
	PackagePrice Money
}
