package usecase

import (
	"context"

	"github.com/xbarbosa1/campaign-studio/internal/entity"
)

type GenerateCampaignsUseCase struct {
	Builder Builder
	Gateway CampaignGateway
}

func NewGenerateCampaignsUseCase(builder Builder, gateway CampaignGateway) *GenerateCampaignsUseCase {
	return &GenerateCampaignsUseCase{Builder: builder, Gateway: gateway}
}

func (uc *GenerateCampaignsUseCase) Execute(ctx context.Context, draft DraftInput) (*entity.CampaignResponse, error) {
	if errs := ValidateDraft(draft); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	req := uc.Builder.BuildRequest(draft)

	resp, err := uc.Gateway.GenerateCampaigns(ctx, req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
