package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xbarbosa1/campaign-studio/internal/entity"
)

func TestExportFilenameIsTimestamped(t *testing.T) {
	mockGateway := new(MockGateway)
	mockGateway.On("ExportCSV", mock.Anything, mock.Anything).Return([]byte("csv"), nil)

	uc := NewExportCampaignsUseCase(NewBuilder(entity.ToneFormal), mockGateway)
	uc.now = func() time.Time {
		return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	}

	out, err := uc.Execute(context.Background(), sampleDraft())

	assert.NoError(t, err)
	assert.Equal(t, "campaigns_20250314-150926.csv", out.Filename)
	assert.Equal(t, []byte("csv"), out.Content)
}

func TestExportValidatesDraftBeforeNetwork(t *testing.T) {
	mockGateway := new(MockGateway)

	uc := NewExportCampaignsUseCase(NewBuilder(entity.ToneFormal), mockGateway)

	_, err := uc.Execute(context.Background(), DraftInput{})

	assert.Error(t, err)
	assert.True(t, IsValidationError(err))
	mockGateway.AssertNotCalled(t, "ExportCSV", mock.Anything, mock.Anything)
}
