package usecase

import (
	"context"

	"github.com/xbarbosa1/campaign-studio/internal/entity"
)

const defaultNarrationLanguage = "en"

type NarrateEmailUseCase struct {
	Gateway CampaignGateway
}

func NewNarrateEmailUseCase(gateway CampaignGateway) *NarrateEmailUseCase {
	return &NarrateEmailUseCase{Gateway: gateway}
}

// Execute reads the first variant body of the latest response and asks the
// generator for audio. The guard runs before any network call: narrating with
// nothing generated yet is a local precondition failure.
func (uc *NarrateEmailUseCase) Execute(ctx context.Context, resp *entity.CampaignResponse, language string) (*NarrateEmailOutput, error) {
	variant, ok := resp.FirstVariant()
	if !ok || variant.Body == "" {
		return nil, ValidationError{"email_body", "no email content available for text-to-speech"}
	}

	if language == "" {
		language = defaultNarrationLanguage
	}

	audio, err := uc.Gateway.SynthesizeAudio(ctx, variant.Body, language)
	if err != nil {
		return nil, err
	}

	return &NarrateEmailOutput{Audio: audio, Language: language}, nil
}
