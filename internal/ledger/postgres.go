package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apm-labs/portfolio-service/internal/logger"
	"github.com/apm-labs/portfolio-service/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	_createTradesTable = `CREATE TABLE IF NOT EXISTS trades (
								id BIGSERIAL PRIMARY KEY,
								user_id UUID NOT NULL,
								ticker TEXT NOT NULL,
								side VARCHAR(4) NOT NULL,
								quantity BIGINT NOT NULL,
								price NUMERIC(18,2) NOT NULL,
								ts TIMESTAMPTZ NOT NULL
							);
							CREATE INDEX IF NOT EXISTS trades_user_id_idx ON trades (user_id);`

	_insertTrade = `INSERT INTO trades (user_id, ticker, side, quantity, price, ts)
					VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	_queryTradesByUser = `SELECT id, user_id, ticker, side, quantity, price, ts
						  FROM trades WHERE user_id = $1 ORDER BY id`

	_queryAllTrades = `SELECT id, user_id, ticker, side, quantity, price, ts
					   FROM trades ORDER BY id`
)

// PostgresLedger is the durable append-only trade store. Sequential ids
// come from the BIGSERIAL column, so concurrent appends never lose or
// duplicate records.
type PostgresLedger struct {
	db     *sqlx.DB
	logger logger.Logger
}

func NewPostgresLedger(db *sqlx.DB, logger logger.Logger) *PostgresLedger {
	return &PostgresLedger{
		db:     db,
		logger: logger,
	}
}

func (l *PostgresLedger) Migrate(ctx context.Context) error {
	if _, err := l.db.ExecContext(ctx, _createTradesTable); err != nil {
		return fmt.Errorf("%w: can't create trades table", err)
	}
	return nil
}

func (l *PostgresLedger) Append(ctx context.Context, t model.Trade) (model.Trade, error) {
	if err := l.db.GetContext(ctx, &t.ID, _insertTrade,
		t.UserID, t.Ticker, t.Side, t.Quantity, t.Price, t.Ts,
	); err != nil {
		return model.Trade{}, fmt.Errorf("%w: can't insert trade", err)
	}
	return t, nil
}

func (l *PostgresLedger) ScanByUser(ctx context.Context, userID uuid.UUID) ([]model.Trade, error) {
	var trades []model.Trade
	if err := l.db.SelectContext(ctx, &trades, _queryTradesByUser, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: can't query trades", err)
	}
	return trades, nil
}

func (l *PostgresLedger) ScanAll(ctx context.Context) ([]model.Trade, error) {
	var trades []model.Trade
	if err := l.db.SelectContext(ctx, &trades, _queryAllTrades); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: can't query trades", err)
	}
	return trades, nil
}
