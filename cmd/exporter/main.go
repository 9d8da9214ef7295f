package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"geoexport-api/internal/geometry"
	"geoexport-api/internal/geoscene"
	"geoexport-api/internal/kml"
	"geoexport-api/internal/models"
	"geoexport-api/internal/proj"
	"geoexport-api/internal/service"

	"github.com/rs/zerolog/log"
)

// geometryFile is the on-disk export input: a geometry, optionally as raw
// bezier control points that get tessellated before extraction.
type geometryFile struct {
	models.Geometry
	BezierPoints []models.BezierPoint `json:"bezier_points,omitempty"`
}

func main() {
	in := flag.String("in", "", "Path to the geometry JSON file to export")
	out := flag.String("out", "", "Destination .kmz path")
	crs := flag.String("crs", "", "Working CRS of the scene (EPSG code, SRID or proj4 string)")
	dx := flag.Float64("dx", 0, "Scene origin shift X, in working CRS units")
	dy := flag.Float64("dy", 0, "Scene origin shift Y, in working CRS units")
	name := flag.String("name", "", "Placemark name (defaults to the output file name)")
	mode := flag.String("mode", string(kml.AltitudeAbsolute), "Altitude mode: absolute or relative")
	altOffset := flag.Float64("alt-offset", 0, "Altitude of level 0, subtracted from every Z")
	resolution := flag.Int("bezier-resolution", 12, "Samples per bezier segment")
	flag.Parse()

	if *in == "" || *out == "" {
		log.Fatal().Msg("--in and --out flags are required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read geometry file")
	}

	var geomFile geometryFile
	if err := json.Unmarshal(data, &geomFile); err != nil {
		log.Fatal().Err(err).Msg("cannot parse geometry file")
	}

	geom := geomFile.Geometry
	if geom.Kind == models.KindBezier && len(geom.Vertices) == 0 && len(geomFile.BezierPoints) > 0 {
		geom.Vertices = geometry.TessellateBezier(geomFile.BezierPoints, *resolution)
	}

	scene := geoscene.New()
	if *crs != "" {
		if err := scene.SetCRS(*crs); err != nil {
			log.Fatal().Err(err).Msg("invalid working CRS")
		}
		if err := scene.SetOriginPrj(*dx, *dy); err != nil {
			log.Fatal().Err(err).Msg("cannot anchor scene origin")
		}
	}

	placemark := *name
	if placemark == "" {
		placemark = strings.TrimSuffix(filepath.Base(*out), filepath.Ext(*out))
	}

	exporter := service.NewExportService(proj.NewReprojector())
	err = exporter.ExportToFile(*out, scene, geom, service.ExportOptions{
		Name:      placemark,
		Mode:      kml.AltitudeMode(*mode),
		AltOffset: *altOffset,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	log.Info().Str("path", *out).Int("points", len(geom.Vertices)).Msg("export complete")
}
