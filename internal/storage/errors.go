package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrValidation = errors.New("rejected by store constraints")
var ErrTransport = errors.New("store unreachable")
