package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Magga23/siteradar/internal/application/port/outbound"
)

type RepositoryProviderImpl struct {
	tx *sql.Tx
}

func (p *RepositoryProviderImpl) Sites() outbound.SiteRepository {
	return NewSiteRepository(p.tx)
}

func (p *RepositoryProviderImpl) IngestLog() outbound.IngestLogRepository {
	return NewIngestLogRepository(p.tx)
}

type UnitOfWorkImpl struct {
	db *sql.DB
}

func NewUnitOfWork(db *sql.DB) *UnitOfWorkImpl {
	return &UnitOfWorkImpl{db: db}
}

func (u *UnitOfWorkImpl) Do(ctx context.Context, fn func(provider outbound.RepositoryProvider) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	provider := &RepositoryProviderImpl{tx: tx}

	if err := fn(provider); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
