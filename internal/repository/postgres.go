package repository

import (
	"context"
	"errors"
	"fmt"

	"geoexport-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements georeference persistence for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the scene_georefs table when it does not exist yet
func (r *Repository) CreateSchema(ctx context.Context) error {
	sql := `
	CREATE TABLE IF NOT EXISTS scene_georefs (
		scene_id VARCHAR(255) PRIMARY KEY,
		crs VARCHAR(255) NOT NULL DEFAULT '',
		origin_x DOUBLE PRECISION,
		origin_y DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		lat DOUBLE PRECISION,
		scale DOUBLE PRECISION,
		zoom INTEGER
	);
	`
	if _, err := r.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// Get loads the georeference record of a scene; returns nil when the scene
// has none
func (r *Repository) Get(ctx context.Context, sceneID string) (*models.GeoRef, error) {
	sql := `
		SELECT scene_id, crs, origin_x, origin_y, lon, lat, scale, zoom
		FROM scene_georefs
		WHERE scene_id = $1
	`

	var rec models.GeoRef
	err := r.db.QueryRow(ctx, sql, sceneID).Scan(
		&rec.SceneID,
		&rec.CRS,
		&rec.OriginX,
		&rec.OriginY,
		&rec.Lon,
		&rec.Lat,
		&rec.Scale,
		&rec.Zoom,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query georeference: %w", err)
	}

	return &rec, nil
}

// Save upserts the georeference record of a scene
func (r *Repository) Save(ctx context.Context, rec models.GeoRef) error {
	sql := `
		INSERT INTO scene_georefs (scene_id, crs, origin_x, origin_y, lon, lat, scale, zoom)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (scene_id) DO UPDATE SET
			crs = EXCLUDED.crs,
			origin_x = EXCLUDED.origin_x,
			origin_y = EXCLUDED.origin_y,
			lon = EXCLUDED.lon,
			lat = EXCLUDED.lat,
			scale = EXCLUDED.scale,
			zoom = EXCLUDED.zoom
	`

	_, err := r.db.Exec(ctx, sql,
		rec.SceneID, rec.CRS, rec.OriginX, rec.OriginY, rec.Lon, rec.Lat, rec.Scale, rec.Zoom)
	if err != nil {
		return fmt.Errorf("repository: failed to save georeference: %w", err)
	}
	return nil
}

// Delete removes the georeference record of a scene
func (r *Repository) Delete(ctx context.Context, sceneID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM scene_georefs WHERE scene_id = $1`, sceneID); err != nil {
		return fmt.Errorf("repository: failed to delete georeference: %w", err)
	}
	return nil
}
