package client

import "errors"

var (
	ErrNoServices = errors.New("client services are not set")
	ErrNoUI       = errors.New("ui is not set")
	ErrScanFailed = errors.New("scan failed")
)
