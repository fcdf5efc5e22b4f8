package persistence

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/department-store/internal/config"
	"github.com/spec-kit/department-store/internal/repository"
)

func TestNewPostgresWithoutDSN(t *testing.T) {
	pg, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, pg)

	assert.ErrorIs(t, pg.Ping(context.Background()), ErrUnavailable)
	err = pg.WithConn(context.Background(), func(repository.DBTX) error {
		t.Fatal("callback must not run without a database")
		return nil
	})
	assert.ErrorIs(t, err, ErrUnavailable)
	pg.Close()
}

func TestEnsureSchemaSkipsWithoutDatabase(t *testing.T) {
	err := EnsureSchema(context.Background(), &Postgres{}, repository.NewDepartmentStore(), zap.NewNop())
	assert.NoError(t, err)
}

func TestEnsureSchemaIntegration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping postgres integration test")
	}
	ctx := context.Background()

	pg, err := NewPostgres(ctx, config.PostgresConfig{DSN: dsn, MaxConns: 2}, zap.NewNop())
	require.NoError(t, err)
	defer pg.Close()
	require.NoError(t, pg.Ping(ctx))

	store := repository.NewDepartmentStore()
	require.NoError(t, EnsureSchema(ctx, pg, store, zap.NewNop()))
	require.NoError(t, EnsureSchema(ctx, pg, store, zap.NewNop()))

	err = pg.WithConn(ctx, func(db repository.DBTX) error {
		_, err := store.All(ctx, db)
		return err
	})
	assert.NoError(t, err)
}

func TestRedisWithoutAddress(t *testing.T) {
	r := NewRedis(config.RedisConfig{}, zap.NewNop())
	require.NotNil(t, r)
	assert.Nil(t, r.Client)

	assert.Error(t, r.Ping(context.Background()))
	assert.Error(t, r.Publish(context.Background(), "departments.events", []byte("{}")))
	r.Close()
}
