// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package replica

const (
	createReplicaSchema = `
		CREATE TABLE IF NOT EXISTS replica_rows (
			entity TEXT    NOT NULL,
			id     INTEGER NOT NULL,
			row    TEXT    NOT NULL,
			PRIMARY KEY (entity, id)
		);
		CREATE TABLE IF NOT EXISTS sync_state (
			entity         TEXT    PRIMARY KEY,
			last_update_ts INTEGER NOT NULL
		);`

	selectCollectionIDs = `
		SELECT id
		FROM replica_rows
		WHERE entity = $1
		ORDER BY id;`

	selectCollectionWatermark = `
		SELECT last_update_ts
		FROM sync_state
		WHERE entity = $1;`

	selectCollectionRows = `
		SELECT row
		FROM replica_rows
		WHERE entity = $1
		ORDER BY id;`

	upsertReplicaRow = `
		INSERT INTO replica_rows (entity, id, row)
		VALUES ($1, $2, $3)
		ON CONFLICT (entity, id) DO UPDATE SET row = excluded.row;`

	deleteReplicaRow = `
		DELETE FROM replica_rows
		WHERE entity = $1 AND id = $2;`

	upsertCollectionWatermark = `
		INSERT INTO sync_state (entity, last_update_ts)
		VALUES ($1, $2)
		ON CONFLICT (entity) DO UPDATE SET last_update_ts = excluded.last_update_ts;`
)
