package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/sortify-ai/backend/conf"
	"github.com/sortify-ai/backend/evalsrvc"
	"github.com/sortify-ai/backend/http"
	"github.com/sortify-ai/backend/intervsrvc"
	"github.com/sortify-ai/backend/ollama"
	"github.com/sortify-ai/backend/proctorsrvc"
	"github.com/sortify-ai/backend/s3bucket"
	"github.com/sortify-ai/backend/sqlitedb"
	"github.com/sortify-ai/backend/tmplsrvc"
	"github.com/sortify-ai/backend/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	cfg, err := conf.Load(os.Getenv("SORTIFY_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg.OverlayEnv()
	cfg.ApplyDefaults()

	db, err := sqlitedb.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	var gen evalsrvc.TextGenerator
	if cfg.GeminiApiKey != "" {
		gemini, err := evalsrvc.NewGemini(ctx, cfg.GeminiApiKey, cfg.GeminiModel)
		if err != nil {
			slog.Error("failed to init gemini client", "error", err)
			os.Exit(1)
		}
		gen = gemini
		slog.Info("gemini evaluation enabled", "model", cfg.GeminiModel)
	} else {
		slog.Warn("GEMINI_API_KEY not set, using rule-based evaluation only")
	}

	var bucket *s3bucket.S3Bucket
	if cfg.EvidenceBucket != "" {
		bucket, err = s3bucket.NewS3Bucket(cfg.AwsRegion, cfg.EvidenceBucket)
		if err != nil {
			slog.Error("failed to init evidence bucket", "error", err)
			os.Exit(1)
		}
		slog.Info("proctoring evidence bucket enabled", "bucket", cfg.EvidenceBucket)
	} else {
		slog.Warn("EVIDENCE_BUCKET not set, proctoring evidence stays in the database")
	}

	userSrvc := user.NewUserSrvc(db)
	tmplSrvc := tmplsrvc.NewTemplateSrvc(db)
	evalSrvc := evalsrvc.NewEvalSrvc(gen)
	ollamaClient := ollama.NewClient(cfg.OllamaUrl, cfg.OllamaModel)
	intervSrvc := intervsrvc.NewIntervSrvc(db, tmplSrvc, evalSrvc, ollamaClient,
		time.Duration(cfg.InterviewDuration)*time.Second)
	proctorSrvc := proctorsrvc.NewProctorSrvc(db, bucket, intervSrvc)

	httpServer := http.NewHttpServer(userSrvc, tmplSrvc, intervSrvc, proctorSrvc,
		[]byte(jwtKey), cfg.CorsOrigins)

	log.Printf("Starting server on %s", cfg.Address)
	err = httpServer.Start(cfg.Address)
	log.Printf("Server stopped with error: %v", err)
}
