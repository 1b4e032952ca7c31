package service

import "errors"

var (
	ErrUnidentifiableRecord = errors.New("record cannot be identified")
	ErrDuplicateLocalRecord = errors.New("remote row already linked to another local record")
	ErrRecordNotPersisted   = errors.New("record is not persisted")
	ErrUnknownEntity        = errors.New("unknown entity")
	ErrInvalidField         = errors.New("invalid field")
	ErrNoRemoteID           = errors.New("no remote identifier given")

	ErrLockNotAcquired = errors.New("record lock not acquired")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
