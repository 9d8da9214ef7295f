package main

import (
	"context"
	"net/http"

	"geoexport-api/internal/config"
	"geoexport-api/internal/handler"
	"geoexport-api/internal/proj"
	"geoexport-api/internal/repository"
	"geoexport-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.CreateSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	reprojector := proj.NewReprojector()

	exportService := service.NewExportService(reprojector)
	georefService := service.NewGeorefService(repo)
	reprojectService := service.NewReprojectService(reprojector)

	exportHandler := handler.NewExportHandler(exportService, georefService)
	georefHandler := handler.NewGeorefHandler(georefService)
	reprojectHandler := handler.NewReprojectHandler(reprojectService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/reproject", reprojectHandler.Reproject)
	r.GET("/scenes/:id/georef", georefHandler.Get)
	r.PUT("/scenes/:id/georef", georefHandler.Set)
	r.DELETE("/scenes/:id/georef", georefHandler.Delete)
	r.POST("/scenes/:id/export/kml", exportHandler.Export)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
