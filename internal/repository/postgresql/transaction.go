package postgresql

import (
	"context"

	"github.com/krooster/krooster-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction bound to the context when one is in
// flight, and the shared pool otherwise. Every repository method goes through
// this so the same code runs inside and outside DB.RunInTx.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFromContext(ctx); ok {
		return tx
	}
	return db
}
