package booking

import "github.com/drufus/serenity/pkg/dbmetrics"

// Reuse the shared executor interfaces so the repository works over a plain
// *sql.DB, the metrics wrapper, or an active transaction from the context.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
