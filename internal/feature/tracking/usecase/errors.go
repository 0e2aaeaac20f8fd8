// Package usecase implements the daily-record business logic for the
// tracking feature.
package usecase

import "errors"

var (
	// ErrRecordNotFound is returned when no daily record exists for the
	// requested user and day. Reads and resets require an existing record;
	// only metric updates create one lazily.
	ErrRecordNotFound = errors.New("no record found for today")

	// ErrDuplicateRecord is returned by the repository when an insert loses
	// the race on the (user, day) unique constraint. ResolveToday recovers
	// from it by re-fetching; it never reaches callers.
	ErrDuplicateRecord = errors.New("record already exists for this day")

	// ErrUserNotFound is returned when the goals of an unknown user are
	// requested.
	ErrUserNotFound = errors.New("user not found")
)
