package proj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSRS(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{
			name:     "bare epsg code",
			input:    "4326",
			expected: "EPSG:4326",
		},
		{
			name:     "srid string",
			input:    "EPSG:3857",
			expected: "EPSG:3857",
		},
		{
			name:     "lowercase authority",
			input:    "epsg:32631",
			expected: "EPSG:32631",
		},
		{
			name:     "init form",
			input:    "+init=epsg:4326",
			expected: "EPSG:4326",
		},
		{
			name:     "proj4 string",
			input:    "+proj=tmerc +lat_0=0 +lon_0=3 +k=0.9996",
			expected: "+proj=tmerc +lat_0=0 +lon_0=3 +k=0.9996",
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
		{
			name:        "garbage",
			input:       "not a crs",
			expectError: true,
		},
		{
			name:        "non numeric code",
			input:       "IGNF:LAMB93X",
			expectError: true,
		},
		{
			name:        "negative code",
			input:       "-12",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srs, err := ParseSRS(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownCRS)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, srs.String())
		})
	}
}

func TestSRSPredicates(t *testing.T) {
	wgs84, err := ParseSRS("4326")
	require.NoError(t, err)
	assert.True(t, wgs84.IsEPSG())
	assert.True(t, wgs84.IsWGS84())
	assert.False(t, wgs84.IsWebMercator())
	assert.False(t, wgs84.IsUTM())

	wm, err := ParseSRS("EPSG:3857")
	require.NoError(t, err)
	assert.True(t, wm.IsWebMercator())

	utmNorth, err := ParseSRS("EPSG:32631")
	require.NoError(t, err)
	assert.True(t, utmNorth.IsUTM())

	utmSouth, err := ParseSRS("EPSG:32733")
	require.NoError(t, err)
	assert.True(t, utmSouth.IsUTM())

	notUTM, err := ParseSRS("EPSG:32661")
	require.NoError(t, err)
	assert.False(t, notUTM.IsUTM())

	proj4, err := ParseSRS("+proj=longlat +datum=WGS84")
	require.NoError(t, err)
	assert.False(t, proj4.IsEPSG())
	assert.Equal(t, "", proj4.SRID())
}

func TestSRSEqualAcrossForms(t *testing.T) {
	a, err := ParseSRS("4326")
	require.NoError(t, err)
	b, err := ParseSRS("EPSG:4326")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("EPSG:3857"))
	assert.False(t, Validate("broken"))
}
