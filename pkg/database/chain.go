package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
)

// ChainHead returns the latest chain_hash for (agent, session), or the empty
// string for genesis. It calls the aip_chain_head SQL function, which takes a
// transaction-scoped advisory lock so concurrent chain extensions linearise.
// Must be called inside the same transaction as the checkpoint insert.
func ChainHead(ctx context.Context, tx *stdsql.Tx, agentID, sessionID string) (string, error) {
	var head string
	err := tx.QueryRowContext(ctx,
		`SELECT aip_chain_head($1, $2)`, agentID, sessionID).Scan(&head)
	if err != nil {
		return "", fmt.Errorf("fetch chain head for %s/%s: %w", agentID, sessionID, err)
	}
	return head, nil
}
