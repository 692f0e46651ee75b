// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ScanResponse is the body returned by POST /api/scan.
type ScanResponse struct {
	Codes []DetectedCode `json:"codes"`
}

// ErrorResponse is the body returned by the detector service on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
