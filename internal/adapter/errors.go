package adapter

import "errors"

var (
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("remote unauthorized")
	ErrForbidden         = errors.New("remote forbidden")
	ErrRowNotFound       = errors.New("remote row not found")
	ErrConflict          = errors.New("remote conflict")
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	ErrInvalidResponse   = errors.New("invalid remote response")
	ErrSheetNotFound     = errors.New("sheet not found")
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrPathOutsideRoot   = errors.New("path outside source root")
	ErrEmptyFile         = errors.New("empty file")
	ErrInvalidObjectName = errors.New("invalid object name")
	ErrTransferFailed    = errors.New("object transfer failed")
)
