// Package models contains the GORM models backing the portfolio tables.
// Each model converts to and from its domain entity with ToDomain and FromDomain
// so that persistence tags never leak into the domain packages.
package models
