package usecase

import (
	"context"

	"github.com/xbarbosa1/campaign-studio/internal/entity"
)

// CampaignGateway is the outbound contract with the remote generation
// service. Implemented by infra/integration/genservice.
type CampaignGateway interface {
	GenerateCampaigns(ctx context.Context, req entity.CampaignRequest) (*entity.CampaignResponse, error)
	ExportCSV(ctx context.Context, req entity.CampaignRequest) ([]byte, error)
	SynthesizeAudio(ctx context.Context, emailBody, language string) ([]byte, error)
}

type EmailService interface {
	SendPreview(to, subject, body string) error
}
