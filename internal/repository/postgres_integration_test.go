//go:build integration

package repository

import (
	"context"
	"testing"

	"geoexport-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections"),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func f(v float64) *float64 { return &v }

func TestRepository_SaveGetDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.CreateSchema(ctx))

	// Unknown scene reads back as nil.
	rec, err := repo.Get(ctx, "scn-missing")
	require.NoError(t, err)
	assert.Nil(t, rec)

	zoom := 15
	full := models.GeoRef{
		SceneID: "scn-1",
		CRS:     "EPSG:32631",
		OriginX: f(500000),
		OriginY: f(4649776.22),
		Lon:     f(3.0),
		Lat:     f(42.0),
		Scale:   f(1),
		Zoom:    &zoom,
	}
	require.NoError(t, repo.Save(ctx, full))

	got, err := repo.Get(ctx, "scn-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, full, *got)

	// Upsert replaces in place, including clearing optional fields.
	update := models.GeoRef{SceneID: "scn-1", CRS: "EPSG:3857", OriginX: f(0), OriginY: f(0)}
	require.NoError(t, repo.Save(ctx, update))

	got, err = repo.Get(ctx, "scn-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, update, *got)
	assert.Nil(t, got.Lon)
	assert.Nil(t, got.Zoom)

	require.NoError(t, repo.Delete(ctx, "scn-1"))
	got, err = repo.Get(ctx, "scn-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_SceneIsolation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.CreateSchema(ctx))

	require.NoError(t, repo.Save(ctx, models.GeoRef{SceneID: "scn-a", CRS: "EPSG:4326", OriginX: f(1), OriginY: f(2)}))
	require.NoError(t, repo.Save(ctx, models.GeoRef{SceneID: "scn-b", CRS: "EPSG:3857", OriginX: f(3), OriginY: f(4)}))

	a, err := repo.Get(ctx, "scn-a")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "EPSG:4326", a.CRS)

	require.NoError(t, repo.Delete(ctx, "scn-a"))

	b, err := repo.Get(ctx, "scn-b")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "EPSG:3857", b.CRS)
}
