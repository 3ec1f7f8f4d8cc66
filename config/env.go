package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	AppPort    string
	DMSAPIURL  string
	DMSTimeout time.Duration
	SessionDB  string
	JWTSecret  string
	DebugMode  bool
}

var Env EnvConfig

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	Env.AppPort = os.Getenv("APP_PORT")
	if Env.AppPort == "" {
		Env.AppPort = "3000"
	}
	Env.DMSAPIURL = os.Getenv("DMS_API_URL")
	Env.SessionDB = os.Getenv("SESSION_DB")
	Env.JWTSecret = os.Getenv("JWT_SECRET")
	Env.DebugMode = os.Getenv("DEBUG_MODE") == "true"

	seconds, err := strconv.Atoi(os.Getenv("DMS_TIMEOUT_SECONDS"))
	if err != nil || seconds <= 0 {
		seconds = 50
	}
	Env.DMSTimeout = time.Duration(seconds) * time.Second
}

func GetJWTSecret() string {
	return Env.JWTSecret
}
