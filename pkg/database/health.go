package database

import (
	"context"
	"database/sql"
	"time"
)

// ReadinessStatus reports whether the database can serve the integrity
// pipeline: connectivity, pool pressure, and the chain-append function the
// attestation path depends on.
type ReadinessStatus struct {
	Status          string `json:"status"`
	PingMs          int64  `json:"ping_ms"`
	ChainReady      bool   `json:"chain_ready"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
}

// Readiness pings the database and verifies that aip_chain_head is installed.
// A reachable database without the chain function is degraded, not ready:
// checkpoints would store but never attest.
func Readiness(ctx context.Context, db *sql.DB) (*ReadinessStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &ReadinessStatus{
			Status: "unavailable",
			PingMs: time.Since(start).Milliseconds(),
		}, err
	}

	var chainReady bool
	err := db.QueryRowContext(ctx,
		`SELECT to_regprocedure('aip_chain_head(text, text)') IS NOT NULL`).
		Scan(&chainReady)
	if err != nil {
		chainReady = false
	}

	stats := db.Stats()
	status := "ready"
	if !chainReady {
		status = "degraded"
	}
	return &ReadinessStatus{
		Status:          status,
		PingMs:          time.Since(start).Milliseconds(),
		ChainReady:      chainReady,
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
	}, nil
}
