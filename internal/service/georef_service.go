package service

import (
	"context"
	"errors"
	"fmt"

	"geoexport-api/internal/geoscene"
	"geoexport-api/internal/models"
)

var (
	// ErrGeorefNotFound is returned when a scene has no stored georeference.
	ErrGeorefNotFound = errors.New("scene georeference not found")
	// ErrGeorefConflict is returned when saving would silently replace an
	// existing, different georeference without confirmation.
	ErrGeorefConflict = errors.New("scene already georeferenced, confirmation required")
)

// GeorefRepository persists per-scene georeference records.
type GeorefRepository interface {
	Get(ctx context.Context, sceneID string) (*models.GeoRef, error)
	Save(ctx context.Context, rec models.GeoRef) error
	Delete(ctx context.Context, sceneID string) error
}

// GeorefService owns per-scene georeference records. It is the single write
// path for the ledger; exporters never go through it.
type GeorefService struct {
	repo GeorefRepository
}

// NewGeorefService creates a new georeference service.
func NewGeorefService(repo GeorefRepository) *GeorefService {
	return &GeorefService{repo: repo}
}

// Get loads the georeference record of a scene.
func (s *GeorefService) Get(ctx context.Context, sceneID string) (*models.GeoRef, error) {
	rec, err := s.repo.Get(ctx, sceneID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load georeference: %w", err)
	}
	if rec == nil {
		return nil, ErrGeorefNotFound
	}
	return rec, nil
}

// Set establishes or updates the working anchor of a scene. A record that
// would be broken is rejected up front, and an existing different record is
// only replaced when the caller confirms, so georeferenced content is never
// silently orphaned.
func (s *GeorefService) Set(ctx context.Context, rec models.GeoRef, confirm bool) error {
	if rec.SceneID == "" {
		return fmt.Errorf("service: scene id is required")
	}

	scene := geoscene.FromRecord(rec)
	if scene.IsBroken() {
		return geoscene.ErrBrokenGeoreference
	}

	existing, err := s.repo.Get(ctx, rec.SceneID)
	if err != nil {
		return fmt.Errorf("service: failed to load existing georeference: %w", err)
	}
	if existing != nil && !confirm && !sameAnchor(*existing, rec) {
		return ErrGeorefConflict
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return fmt.Errorf("service: failed to save georeference: %w", err)
	}
	return nil
}

// Delete removes a scene's georeference record.
func (s *GeorefService) Delete(ctx context.Context, sceneID string) error {
	if err := s.repo.Delete(ctx, sceneID); err != nil {
		return fmt.Errorf("service: failed to delete georeference: %w", err)
	}
	return nil
}

func sameAnchor(a, b models.GeoRef) bool {
	return a.CRS == b.CRS &&
		floatPtrEq(a.OriginX, b.OriginX) &&
		floatPtrEq(a.OriginY, b.OriginY)
}

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
