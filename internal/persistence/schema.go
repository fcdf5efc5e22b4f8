package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/department-store/internal/repository"
)

// EnsureSchema creates the departments table when it is missing.
func EnsureSchema(ctx context.Context, pg *Postgres, store repository.DepartmentStore, logger *zap.Logger) error {
	if pg == nil || pg.Pool == nil {
		logger.Warn("no postgres handle available; skipping schema setup")
		return nil
	}

	err := pg.WithConn(ctx, func(db repository.DBTX) error {
		return store.CreateTable(ctx, db)
	})
	if err != nil {
		return fmt.Errorf("ensure departments table: %w", err)
	}

	logger.Info("departments table ready")
	return nil
}
