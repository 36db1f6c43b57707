// Package models defines the core domain models for the car wash
// sales management system.
//
// # Entities
//
//   - Package: a wash service offering with a fixed price
//   - Car: a customer vehicle, keyed by its plate number
//   - ServicePackage: one instance of a car receiving a package on a date
//   - Payment: money received against a service record
//
// # Relationships
//
// ServicePackage references Car (by plate number) and Package (by package
// number); Payment references ServicePackage (by record number). All three
// references are delete-restrict: a parent row cannot be removed while
// child rows point at it.
//
// # Design Principles
//
//  1. Models are plain rows: no object graph, no lazy loading. A read that
//     needs related display fields (driver name, package price) carries
//     them on a dedicated detail struct populated by a join.
//  2. Monetary fields use Money, which keeps exactly two fractional digits
//     through computation and JSON encoding.
//  3. Calendar dates travel as YYYY-MM-DD strings end to end, matching the
//     storage representation and the API payloads.
package models
