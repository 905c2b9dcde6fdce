// Package persistence stores portfolio content, contact messages and
// dashboard users through GORM. SQLite, PostgreSQL and MySQL are supported.
package persistence
