package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xbarbosa1/campaign-studio/internal/entity"
	"github.com/xbarbosa1/campaign-studio/internal/infra/http/handlers"
	studiomw "github.com/xbarbosa1/campaign-studio/internal/infra/http/middleware"
	"github.com/xbarbosa1/campaign-studio/internal/infra/integration/genservice"
	"github.com/xbarbosa1/campaign-studio/internal/infra/mail"
	"github.com/xbarbosa1/campaign-studio/internal/usecase"
	"github.com/xbarbosa1/campaign-studio/internal/workflow"
)

func main() {
	godotenv.Load()

	generatorURL := os.Getenv("GENERATOR_URL")
	if generatorURL == "" {
		generatorURL = "http://localhost:8000"
	}

	// 1. Gateway
	gateway := genservice.NewClient(generatorURL)

	// 2. UseCases
	builder := usecase.NewBuilder(entity.Tone(os.Getenv("DEFAULT_TONE")))
	generateUC := usecase.NewGenerateCampaignsUseCase(builder, gateway)
	exportUC := usecase.NewExportCampaignsUseCase(builder, gateway)
	narrateUC := usecase.NewNarrateEmailUseCase(gateway)

	// Preview mail is optional; stays nil when MAIL_HOST is unset.
	var sender usecase.EmailService
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		sender = mail.NewPreviewSender(
			host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)
	}
	previewUC := usecase.NewPreviewEmailUseCase(sender)

	// 3. Workflow session
	session := workflow.NewSession(generateUC, exportUC, narrateUC, previewUC)

	// 4. Handlers
	campaignHandler := handlers.NewCampaignHandler(session)
	accountHandler := handlers.NewAccountHandler(session)
	healthHandler := handlers.NewHealthHandler(generatorURL, os.Getenv("MAIL_HOST"))

	// 5. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(studiomw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/accounts", accountHandler.ListHandler)
	r.Post("/accounts", accountHandler.AddHandler)
	r.Put("/accounts/{index}", accountHandler.UpdateHandler)
	r.Delete("/accounts/{index}", accountHandler.RemoveHandler)

	r.Post("/campaigns/generate", campaignHandler.GenerateHandler)
	r.Post("/campaigns/export", campaignHandler.ExportHandler)
	r.Post("/campaigns/narrate", campaignHandler.NarrateHandler)
	r.Post("/campaigns/preview", campaignHandler.PreviewHandler)
	r.Get("/campaigns/report", campaignHandler.ReportHandler)
	r.Get("/campaigns/audio", campaignHandler.AudioHandler)
	r.Delete("/campaigns/audio", campaignHandler.ClearAudioHandler)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Campaign Studio running on port :%s (generator: %s)", port, generatorURL)
	http.ListenAndServe(":"+port, r)
}
