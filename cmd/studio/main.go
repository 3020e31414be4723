package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/xbarbosa1/campaign-studio/internal/entity"
	"github.com/xbarbosa1/campaign-studio/internal/infra/integration/genservice"
	"github.com/xbarbosa1/campaign-studio/internal/infra/media"
	"github.com/xbarbosa1/campaign-studio/internal/usecase"
	"github.com/xbarbosa1/campaign-studio/internal/workflow"
)

// studio runs one full workflow from the command line: build the request,
// generate, print the report, and optionally export the CSV and narrate the
// first email to files.
func main() {
	godotenv.Load()

	var (
		url        = flag.String("url", envOr("GENERATOR_URL", "http://localhost:8000"), "generation service base URL")
		account    = flag.String("account", "", "account name")
		industry   = flag.String("industry", "", "industry")
		painPoints = flag.String("pain-points", "", "comma-separated pain points")
		contacts   = flag.String("contacts", "", "comma-separated contact names")
		objective  = flag.String("objective", "awareness", "campaign objective (awareness|nurturing|upselling)")
		interest   = flag.String("interest", "", "interest")
		tone       = flag.String("tone", "", "tone (formal|casual|enthusiastic|neutral)")
		language   = flag.String("language", "en", "language code")
		numEmails  = flag.String("emails", "1", "number of emails (1-10)")
		doExport   = flag.Bool("export", false, "also export the campaign CSV")
		doNarrate  = flag.Bool("narrate", false, "also narrate the first email to an audio file")
		outDir     = flag.String("out", ".", "directory for exported files")
	)
	flag.Parse()

	gateway := genservice.NewClient(*url)
	builder := usecase.NewBuilder(entity.Tone(envOr("DEFAULT_TONE", string(entity.ToneFormal))))

	session := workflow.NewSession(
		usecase.NewGenerateCampaignsUseCase(builder, gateway),
		usecase.NewExportCampaignsUseCase(builder, gateway),
		usecase.NewNarrateEmailUseCase(gateway),
		usecase.NewPreviewEmailUseCase(nil),
	)

	index := session.AddDraft(usecase.DraftInput{
		AccountName:       *account,
		Industry:          *industry,
		PainPoints:        *painPoints,
		Contacts:          *contacts,
		CampaignObjective: *objective,
		Interest:          *interest,
		Tone:              *tone,
		Language:          *language,
		NumEmails:         *numEmails,
	})

	ctx := context.Background()

	report, err := session.Generate(ctx, index)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	fmt.Println(report)

	if *doExport {
		out, err := session.Export(ctx, index)
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		path, err := media.SaveBlob(*outDir, out.Filename, out.Content)
		if err != nil {
			log.Fatalf("save csv: %v", err)
		}
		fmt.Printf("CSV saved: %s\n", path)
	}

	if *doNarrate {
		out, err := session.Narrate(ctx)
		if err != nil {
			log.Fatalf("narrate: %v", err)
		}
		path, err := media.SaveBlob(*outDir, "email_1.mp3", out.Audio)
		if err != nil {
			log.Fatalf("save audio: %v", err)
		}
		fmt.Printf("Audio saved: %s\n", path)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
