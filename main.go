package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/bookkeeper-app/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration from a .env file if one exists
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// The database lives in the data directory, which can be moved
	// with the DATA_DIR environment variable
	dataDir, ok := os.LookupEnv("DATA_DIR")
	if !ok {
		dataDir = filepath.Join(".", "data")
	}

	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	db, err := models.Connect(filepath.Join(dataDir, "bookkeeper.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Router(db)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Listens on PORT if set, defaults to :8080
	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
