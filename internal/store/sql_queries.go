// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getGrant = `
		SELECT
			kind,
			granted,
			updated_at
		FROM permission_grants
		WHERE kind = ?;`

	saveGrant = `
		INSERT INTO permission_grants (
			kind,
			granted,
			updated_at
		) VALUES (?, ?, ?)
		ON CONFLICT (kind) DO UPDATE SET
			granted = excluded.granted,
			updated_at = excluded.updated_at;`
)
