// Package store defines interfaces for data persistence operations.
// These interfaces keep the vocabulary services independent of the SQL
// dialect in use; implementations live in internal/platform/sqlstore.
package store
