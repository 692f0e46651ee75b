// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the scanner client application runtime.
//
// It runs either the interactive terminal UI or, when an image path is
// configured, a single non-interactive scan whose result is printed to
// stdout.
package client
