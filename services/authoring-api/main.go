package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/apihelpers"
	"github.com/Trust-Tai/bioptrics-survey-backend/services/authoring-api/apihandlers"
)

var conf Config

func main() {

	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	v1Root := router.Group("/v1")

	v1APIHandlers := apihandlers.NewHTTPHandler(
		conf.AuthoringUserJWTSignKey,
		conf.AuthoringUserJWTExpiresIn,
		conf.AllowedInstanceIDs,
	)
	v1APIHandlers.AddAuthAPI(v1Root)
	v1APIHandlers.AddQuestionManagementAPI(v1Root)
	v1APIHandlers.AddQuestionTemplateAPI(v1Root)
	v1APIHandlers.AddSurveyManagementAPI(v1Root)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "authoring-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Authoring API", slog.String("port", conf.GinConfig.Port))
	if !conf.GinConfig.MTLS.Use {
		err := router.Run(":" + conf.GinConfig.Port)
		if err != nil {
			slog.Error("Exited Authoring API", slog.String("error", err.Error()))
			return
		}
	} else {
		tlsConfig, err := apihelpers.LoadTLSConfig(conf.GinConfig.MTLS.CertificatePaths)
		if err != nil {
			slog.Error("Error loading TLS config.", slog.String("error", err.Error()))
			return
		}

		server := &http.Server{
			Addr:      ":" + conf.GinConfig.Port,
			Handler:   router,
			TLSConfig: tlsConfig,
		}

		err = server.ListenAndServeTLS(conf.GinConfig.MTLS.CertificatePaths.ServerCertPath, conf.GinConfig.MTLS.CertificatePaths.ServerKeyPath)
		if err != nil {
			slog.Error("Exited Authoring API", slog.String("error", err.Error()))
			return
		}
	}
}
