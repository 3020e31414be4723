package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xbarbosa1/campaign-studio/internal/entity"
)

// MockGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GenerateCampaigns(ctx context.Context, req entity.CampaignRequest) (*entity.CampaignResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CampaignResponse), args.Error(1)
}

func (m *MockGateway) ExportCSV(ctx context.Context, req entity.CampaignRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockGateway) SynthesizeAudio(ctx context.Context, emailBody, language string) ([]byte, error) {
	args := m.Called(ctx, emailBody, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func responseWithBody(body string) *entity.CampaignResponse {
	return &entity.CampaignResponse{
		Campaigns: []entity.Campaign{
			{
				AccountName: "Acme",
				Emails: []entity.Email{
					{Variants: []entity.Variant{{Subject: "S", Body: body}}},
				},
			},
		},
	}
}

func TestNarrateDefaultsLanguageToEnglish(t *testing.T) {
	mockGateway := new(MockGateway)
	mockGateway.On("SynthesizeAudio", mock.Anything, "Dear customer", "en").Return([]byte("audio"), nil)

	uc := NewNarrateEmailUseCase(mockGateway)

	out, err := uc.Execute(context.Background(), responseWithBody("Dear customer"), "")

	assert.NoError(t, err)
	assert.Equal(t, "en", out.Language)
	mockGateway.AssertCalled(t, "SynthesizeAudio", mock.Anything, "Dear customer", "en")
}

func TestNarrateNilResponseFailsWithoutNetwork(t *testing.T) {
	mockGateway := new(MockGateway)

	uc := NewNarrateEmailUseCase(mockGateway)

	_, err := uc.Execute(context.Background(), nil, "en")

	assert.Error(t, err)
	assert.True(t, IsValidationError(err))
	mockGateway.AssertNotCalled(t, "SynthesizeAudio", mock.Anything, mock.Anything, mock.Anything)
}

func TestNarrateEmptyBodyFailsWithoutNetwork(t *testing.T) {
	mockGateway := new(MockGateway)

	uc := NewNarrateEmailUseCase(mockGateway)

	_, err := uc.Execute(context.Background(), responseWithBody(""), "en")

	assert.Error(t, err)
	assert.True(t, IsValidationError(err))
	mockGateway.AssertNotCalled(t, "SynthesizeAudio", mock.Anything, mock.Anything, mock.Anything)
}
