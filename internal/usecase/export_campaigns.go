package usecase

import (
	"context"
	"fmt"
	"time"
)

type ExportCampaignsUseCase struct {
	Builder Builder
	Gateway CampaignGateway

	// now is swappable in tests for a stable filename.
	now func() time.Time
}

func NewExportCampaignsUseCase(builder Builder, gateway CampaignGateway) *ExportCampaignsUseCase {
	return &ExportCampaignsUseCase{Builder: builder, Gateway: gateway, now: time.Now}
}

// Execute issues its own request to the generator. It does not depend on a
// prior generation: the CSV export is built server-side from the same draft.
func (uc *ExportCampaignsUseCase) Execute(ctx context.Context, draft DraftInput) (*ExportCampaignsOutput, error) {
	if errs := ValidateDraft(draft); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	req := uc.Builder.BuildRequest(draft)

	content, err := uc.Gateway.ExportCSV(ctx, req)
	if err != nil {
		return nil, err
	}

	return &ExportCampaignsOutput{
		Filename: exportFilename(uc.now()),
		Content:  content,
	}, nil
}

// exportFilename stamps the submission time so repeated exports never collide.
func exportFilename(t time.Time) string {
	return fmt.Sprintf("campaigns_%s.csv", t.UTC().Format("20060102-150405"))
}
