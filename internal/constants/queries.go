package constants

const (
	CountAssets = `
	SELECT COUNT(*) FROM assets
	`

	CountAssetsWithoutLocation = `
	SELECT COUNT(*) FROM assets WHERE location_id IS NULL
	`

	// Status disagrees with what the asset's maintenance records and
	// shipments derive: open maintenance forces 'maintenance', an in-transit
	// shipment forces 'shipped', and either status without a live cause is
	// stale.
	CountAssetsInconsistentStatus = `
	SELECT COUNT(*) FROM assets a
	WHERE a.status <> CASE
		WHEN EXISTS (
			SELECT 1 FROM maintenance_records m
			WHERE m.asset_id = a.id AND m.status IN ('pending', 'in_progress')
		) THEN 'maintenance'
		WHEN EXISTS (
			SELECT 1 FROM shipments s
			WHERE s.asset_id = a.id AND s.status = 'in_transit'
		) THEN 'shipped'
		WHEN a.status IN ('maintenance', 'shipped') THEN 'active'
		ELSE a.status
	END
	`

	CountOrphanedMaintenance = `
	SELECT COUNT(*) FROM maintenance_records m
	WHERE NOT EXISTS (SELECT 1 FROM assets a WHERE a.id = m.asset_id)
	`

	CountOrphanedShipments = `
	SELECT COUNT(*) FROM shipments s
	WHERE NOT EXISTS (SELECT 1 FROM assets a WHERE a.id = s.asset_id)
	`

	InsertAuditLog = `
	INSERT INTO audit_logs (id, actor_id, action, entity_type, entity_id, details, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	GetRecentAuditLogs = `
	SELECT id, actor_id, action, entity_type, entity_id, details, created_at
	FROM audit_logs
	ORDER BY created_at DESC
	LIMIT $1
	`
)
