package service

import "fmt"

// Reprojector converts a single 2D point between CRSs.
type Reprojector interface {
	Point(src, dst string, x, y float64) (float64, float64, error)
}

// ReprojectService contains the business logic for ad hoc coordinate
// reprojection requests.
type ReprojectService struct {
	reprojer Reprojector
}

// NewReprojectService creates a new reproject service.
func NewReprojectService(rp Reprojector) *ReprojectService {
	return &ReprojectService{reprojer: rp}
}

// Reproject transforms (x, y) from the src CRS to the dst CRS.
func (s *ReprojectService) Reproject(src, dst string, x, y float64) (float64, float64, error) {
	if src == "" || dst == "" {
		return 0, 0, fmt.Errorf("service: source and destination CRS are required")
	}
	x2, y2, err := s.reprojer.Point(src, dst, x, y)
	if err != nil {
		return 0, 0, fmt.Errorf("service: reprojection failed: %w", err)
	}
	return x2, y2, nil
}
