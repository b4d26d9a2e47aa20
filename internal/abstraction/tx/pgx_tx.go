package tx

import (
	"context"
	"errors"

	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type PgxTxManager struct {
	db *pgxpool.Pool
}

func NewPgxTxManager(db *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{db: db}
}

// Begin startet eine Transaktion mit Read-Committed; Aufgaben-Updates sperren ihre Zeile selbst (FOR UPDATE).
func (m *PgxTxManager) Begin(ctx context.Context) (Tx, *app_errors.AppError) {
	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, app_errors.NewInternal(err)
	}

	return &PgxTx{Tx: tx}, nil
}

type PgxTx struct {
	Tx pgx.Tx
}

func (t *PgxTx) Commit(ctx context.Context) *app_errors.AppError {
	if err := t.Tx.Commit(ctx); err != nil {
		return app_errors.NewInternal(err)
	}
	return nil
}

// Rollback ist nach einem Commit ein No-op.
func (t *PgxTx) Rollback(ctx context.Context) *app_errors.AppError {
	if err := t.Tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		log.Warn().Err(err).Msg("Rollback fehlgeschlagen")
	}
	return nil
}

// Unwrap liefert die pgx-Transaktion für Repositories.
func Unwrap(t Tx) pgx.Tx {
	return t.(*PgxTx).Tx
}
