package service

import "errors"

// The four failure classes callers are allowed to distinguish. Everything
// the services return wraps one of these.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProvider        = errors.New("payment provider error")
	ErrMetadataMissing = errors.New("purchase metadata missing")
	ErrStore           = errors.New("store error")
)
