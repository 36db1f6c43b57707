package models

// DailySalesRow is one day of payment activity.
type DailySalesRow struct {
	// Date is the payment date (YYYY-MM-DD).
	Date string

	// TotalServices is the number of payments received that day.
	TotalServices int64

	// TotalRevenue is the sum of amounts paid that day.
	TotalRevenue Money
}

// MonthlyRevenueRow is one calendar month of payment activity.
type MonthlyRevenueRow struct {
	// Month is the payment month (YYYY-MM).
	Month string

	// TotalServices is the number of payments received that month.
	TotalServices int64

	// TotalRevenue is the sum of amounts paid that month.
	TotalRevenue Money
}

// PackagePopularityRow reports usage per package. Packages with no
// service records still appear, with zero counts and revenue.
type PackagePopularityRow struct {
	PackageNumber int64
	PackageName   string

	// TimesUsed is the number of service records for the package.
	TimesUsed int64

	// TotalRevenue is the sum of payments reachable through those records.
	TotalRevenue Money
}

// CustomerFrequencyRow reports visit activity per car. Cars with no
// visits still appear, with zero counts and no last visit.
type CustomerFrequencyRow struct {
	PlateNumber string
	DriverName  string
	PhoneNumber string

	// VisitCount is the number of service records for the car.
	VisitCount int64

	// TotalSpent is the sum of payments reachable through those records.
	TotalSpent Money

	// LastVisit is the most recent payment date, nil when the car has
	// no payments.
	LastVisit *string
}

// CarTypeRevenueRow reports revenue grouped by vehicle type. Types with
// no activity still appear with zero aggregates.
type CarTypeRevenueRow struct {
	CarType string

	// ServiceCount is the number of service records for cars of the type.
	ServiceCount int64

	// TotalRevenue is the sum of reachable payment amounts.
	TotalRevenue Money

	// AverageRevenue is the arithmetic mean over matched payments only;
	// unpaid services do not contribute zeros to the denominator.
	AverageRevenue Money
}

// UnpaidServiceRow is a service record with no payment against it,
// joined to its car and package for display.
type UnpaidServiceRow struct {
	RecordNumber int64
	ServiceDate  string
	PlateNumber  string
	DriverName   string
	PhoneNumber  string
	PackageName  string
	PackagePrice Money
}
