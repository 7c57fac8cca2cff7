// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the application store: one record per multi-step submission,
with step payloads in per-step rows.

# Operations

	st := store.New(db)
	id, err := st.CreateGuest(ctx, sessionID)
	app, err := st.Get(ctx, id)
	current, err := st.WriteStep(ctx, id, step, payload, phone)
	app, views, err := st.GetSteps(ctx, id)
	sums, err := st.List(ctx, limit, offset)

# Write Semantics

A step write never creates an application; unknown IDs fail with ErrNotFound.
Each write runs in one transaction covering the application row (current_step
high-water mark, updated_at refresh, optional phone attach) and the step row
upsert, so a failed write leaves nothing half-applied.

Steps occupy disjoint (application_id, step) rows. Concurrent writes to
different steps of one application cannot drop each other; rewriting the same
step replaces that step's payload wholesale, which makes retries idempotent.

current_step is only a high-water mark of step numbers seen. Whether an
application is complete is derived by counting recorded steps against the
full flow.
*/
package store
