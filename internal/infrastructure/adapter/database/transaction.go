package database

import (
	"context"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"gorm.io/gorm"
)

// Transactor runs units of work inside database transactions and retries
// them when the database reports a lock conflict
type Transactor struct {
	db      *gorm.DB
	retrier *Retrier
	logger  coreport.Logger
}

// NewTransactor creates a new Transactor
func NewTransactor(db *gorm.DB, retrier *Retrier, logger coreport.Logger) *Transactor {
	return &Transactor{
		db:      db,
		retrier: retrier,
		logger:  logger,
	}
}

// InTransaction executes fn in a transaction. fn may run more than once and
// must not keep state between attempts. The transaction is rolled back when
// fn returns an error.
func (t *Transactor) InTransaction(ctx context.Context, name string, fn func(tx *gorm.DB) error) error {
	return t.retrier.Do(ctx, name, func() error {
		err := t.db.WithContext(ctx).Transaction(fn)
		if err != nil {
			t.logger.Debug("Database transaction rolled back", map[string]any{
				"operation": name,
				"error":     err.Error(),
			})
		}
		return err
	})
}
