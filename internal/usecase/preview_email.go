package usecase

import (
	"github.com/xbarbosa1/campaign-studio/internal/entity"
)

type PreviewEmailUseCase struct {
	EmailService EmailService
}

func NewPreviewEmailUseCase(emailService EmailService) *PreviewEmailUseCase {
	return &PreviewEmailUseCase{EmailService: emailService}
}

// Execute sends the first generated variant to a real inbox so copy can be
// reviewed in an email client before the campaign ships.
func (uc *PreviewEmailUseCase) Execute(input PreviewEmailInput, resp *entity.CampaignResponse) error {
	if uc.EmailService == nil {
		return &DomainError{Code: "MAIL_NOT_CONFIGURED", Message: "preview mail is not configured"}
	}
	if input.To == "" {
		return ValidationError{"to", "is required"}
	}

	variant, ok := resp.FirstVariant()
	if !ok {
		return ValidationError{"email_body", "no email content available for preview"}
	}

	return uc.EmailService.SendPreview(input.To, variant.Subject, variant.Body)
}
