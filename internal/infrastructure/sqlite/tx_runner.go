package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
)

var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sql.DB
}

func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run hace Commit si fn termina sin error; si no, Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos catalog.Repositories) error) (retErr error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepositories arma los repositorios del catálogo sobre q (db o tx).
func NewRepositories(q Querier) catalog.Repositories {
	return catalog.Repositories{
		StorageCategories:  NewStorageCategoryRepository(q),
		ItemTypeCategories: NewItemTypeCategoryRepository(q),
		Storages:           NewStorageRepository(q),
		ItemTypes:          NewItemTypeRepository(q),
	}
}
