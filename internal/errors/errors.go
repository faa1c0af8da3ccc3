// Package errors provides centralized error handling for opsboard.
//
// This package defines sentinel errors used for programmatic error
// categorization throughout the application. All error types can be
// checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrPrimaryFetchFailed indicates the Tasks collection could not be
	// fetched. The board degrades to guest requests only when this is
	// the sole failure.
	ErrPrimaryFetchFailed = errors.New("primary collection fetch failed")

	// ErrSecondaryFetchFailed indicates the GuestRequests collection
	// could not be fetched. The board degrades to tasks only when this
	// is the sole failure.
	ErrSecondaryFetchFailed = errors.New("secondary collection fetch failed")

	// ErrAllSourcesFailed indicates both collections failed to fetch
	// and no board can be shown. Retryable by reloading.
	ErrAllSourcesFailed = errors.New("all source collections failed")

	// ErrStoreStatus indicates the record store answered with a
	// non-success HTTP status.
	ErrStoreStatus = errors.New("record store returned error status")

	// ErrRecordNotFound indicates an update targeted a row that does
	// not exist in its collection.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnknownCollection indicates a store call named a collection
	// the adapter does not serve.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrEmptyPatch indicates an UpdateStatus call carried no changed
	// columns.
	ErrEmptyPatch = errors.New("status patch is empty")

	// ErrInvalidPatchColumn indicates a status patch touched a column
	// outside the lifecycle allow-list.
	ErrInvalidPatchColumn = errors.New("column is not patchable")

	// ErrConfigNil indicates a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidStore indicates an invalid record store
	// configuration value.
	ErrConfigInvalidStore = errors.New("invalid store configuration")

	// ErrConfigInvalidBoard indicates an invalid board configuration
	// value.
	ErrConfigInvalidBoard = errors.New("invalid board configuration")

	// ErrConfigNotFound indicates that the configuration file was not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrNotANumber indicates a numeric input could not be parsed.
	ErrNotANumber = errors.New("value must be a number")
)
