package service

import (
	"context"
	"testing"

	"geoexport-api/internal/geoscene"
	"geoexport-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGeorefRepository is a mock implementation of the GeorefRepository interface
type MockGeorefRepository struct {
	mock.Mock
}

func (m *MockGeorefRepository) Get(ctx context.Context, sceneID string) (*models.GeoRef, error) {
	args := m.Called(ctx, sceneID)
	rec, _ := args.Get(0).(*models.GeoRef)
	return rec, args.Error(1)
}

func (m *MockGeorefRepository) Save(ctx context.Context, rec models.GeoRef) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockGeorefRepository) Delete(ctx context.Context, sceneID string) error {
	args := m.Called(ctx, sceneID)
	return args.Error(0)
}

func validRecord(sceneID string) models.GeoRef {
	return models.GeoRef{SceneID: sceneID, CRS: "EPSG:3857", OriginX: f(1000), OriginY: f(2000)}
}

func TestGeorefService_Get(t *testing.T) {
	tests := []struct {
		name        string
		mockRecord  *models.GeoRef
		mockError   error
		expectError error
	}{
		{
			name:       "existing record",
			mockRecord: &models.GeoRef{SceneID: "scn-1", CRS: "EPSG:3857"},
		},
		{
			name:        "missing record",
			mockRecord:  nil,
			expectError: ErrGeorefNotFound,
		},
		{
			name:        "repository error",
			mockError:   assert.AnError,
			expectError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockGeorefRepository)
			service := NewGeorefService(mockRepo)
			mockRepo.On("Get", mock.Anything, "scn-1").Return(tt.mockRecord, tt.mockError)

			rec, err := service.Get(context.Background(), "scn-1")
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockRecord, rec)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGeorefService_SetNewScene(t *testing.T) {
	mockRepo := new(MockGeorefRepository)
	service := NewGeorefService(mockRepo)

	rec := validRecord("scn-1")
	mockRepo.On("Get", mock.Anything, "scn-1").Return(nil, nil)
	mockRepo.On("Save", mock.Anything, rec).Return(nil)

	require.NoError(t, service.Set(context.Background(), rec, false))
	mockRepo.AssertExpectations(t)
}

func TestGeorefService_SetRejectsBrokenRecord(t *testing.T) {
	mockRepo := new(MockGeorefRepository)
	service := NewGeorefService(mockRepo)

	// Shift recorded without a CRS never reaches the repository.
	rec := models.GeoRef{SceneID: "scn-1", OriginX: f(1), OriginY: f(2)}
	err := service.Set(context.Background(), rec, false)
	assert.ErrorIs(t, err, geoscene.ErrBrokenGeoreference)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGeorefService_SetConflictRequiresConfirmation(t *testing.T) {
	existing := validRecord("scn-1")
	changed := validRecord("scn-1")
	changed.OriginX = f(9999)

	t.Run("without confirmation", func(t *testing.T) {
		mockRepo := new(MockGeorefRepository)
		service := NewGeorefService(mockRepo)
		mockRepo.On("Get", mock.Anything, "scn-1").Return(&existing, nil)

		err := service.Set(context.Background(), changed, false)
		assert.ErrorIs(t, err, ErrGeorefConflict)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("with confirmation", func(t *testing.T) {
		mockRepo := new(MockGeorefRepository)
		service := NewGeorefService(mockRepo)
		mockRepo.On("Get", mock.Anything, "scn-1").Return(&existing, nil)
		mockRepo.On("Save", mock.Anything, changed).Return(nil)

		require.NoError(t, service.Set(context.Background(), changed, true))
		mockRepo.AssertExpectations(t)
	})

	t.Run("same anchor needs no confirmation", func(t *testing.T) {
		mockRepo := new(MockGeorefRepository)
		service := NewGeorefService(mockRepo)
		same := validRecord("scn-1")
		mockRepo.On("Get", mock.Anything, "scn-1").Return(&existing, nil)
		mockRepo.On("Save", mock.Anything, same).Return(nil)

		require.NoError(t, service.Set(context.Background(), same, false))
		mockRepo.AssertExpectations(t)
	})
}

func TestGeorefService_SetRequiresSceneID(t *testing.T) {
	service := NewGeorefService(new(MockGeorefRepository))
	err := service.Set(context.Background(), models.GeoRef{CRS: "EPSG:4326"}, false)
	assert.Error(t, err)
}

func TestGeorefService_Delete(t *testing.T) {
	mockRepo := new(MockGeorefRepository)
	service := NewGeorefService(mockRepo)
	mockRepo.On("Delete", mock.Anything, "scn-1").Return(nil)

	require.NoError(t, service.Delete(context.Background(), "scn-1"))
	mockRepo.AssertExpectations(t)
}
