// Package kml formats reprojected geographic coordinates as a KML 2.2
// LineString document and packages it into a KMZ container.
package kml

import (
	"fmt"
	"strings"

	"geoexport-api/internal/models"
)

// AltitudeMode selects how a viewer interprets the Z component.
type AltitudeMode string

const (
	// AltitudeAbsolute interprets altitudes as meters above sea level.
	AltitudeAbsolute AltitudeMode = "absolute"
	// AltitudeRelative interprets altitudes as meters above ground level.
	AltitudeRelative AltitudeMode = "relative"
)

// Valid reports whether the mode is one a KML viewer understands.
func (m AltitudeMode) Valid() bool {
	return m == AltitudeAbsolute || m == AltitudeRelative
}

const docTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2"
    xmlns:gx="http://www.google.com/kml/ext/2.2"
    xmlns:kml="http://www.opengis.net/kml/2.2"
    xmlns:atom="http://www.w3.org/2005/Atom">
	<Document>
		<name>%s.kmz</name>
		<Style id="s_ylw-pushpin">
			<IconStyle>
				<scale>1.1</scale>
				<Icon>
					<href>http://maps.google.com/mapfiles/kml/pushpin/ylw-pushpin.png</href>
				</Icon>
				<hotSpot x="20" y="2" xunits="pixels" yunits="pixels"/>
			</IconStyle>
		</Style>
		<Style id="s_ylw-pushpin_hl">
			<IconStyle>
				<scale>1.3</scale>
				<Icon>
					<href>http://maps.google.com/mapfiles/kml/pushpin/ylw-pushpin.png</href>
				</Icon>
				<hotSpot x="20" y="2" xunits="pixels" yunits="pixels"/>
			</IconStyle>
		</Style>
		<StyleMap id="m_ylw-pushpin">
			<Pair>
				<key>normal</key>
				<styleUrl>#s_ylw-pushpin</styleUrl>
			</Pair>
			<Pair>
				<key>highlight</key>
				<styleUrl>#s_ylw-pushpin_hl</styleUrl>
			</Pair>
		</StyleMap>
		<Placemark>
			<name>%s</name>
			<styleUrl>#m_ylw-pushpin</styleUrl>
			<LineString>
				<extrude>1</extrude>
				<tessellate>1</tessellate>
				<altitudeMode>%s</altitudeMode>
				<coordinates>
                    %s
                </coordinates>
            </LineString>
        </Placemark>
    </Document>
</kml>
`

// BuildDocument renders the KML document for a named single-path placemark.
// Coordinate triples are encoded lon,lat,alt with 15 decimal digits each so
// a round trip through the textual form shows no drift.
func BuildDocument(name string, mode AltitudeMode, points []models.GeoPoint) string {
	tokens := make([]string, len(points))
	for i, p := range points {
		tokens[i] = fmt.Sprintf("%.15f,%.15f,%.15f", p.Lon, p.Lat, p.Alt)
	}
	return fmt.Sprintf(docTemplate, name, name, mode, strings.Join(tokens, " "))
}
