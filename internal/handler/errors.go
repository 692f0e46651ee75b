// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server config
// has no HTTP address, leaving the service without a transport.
var errNoHandlersAreCreated = errors.New("no handlers are created")
