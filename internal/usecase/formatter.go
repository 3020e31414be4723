package usecase

import (
	"fmt"
	"strings"

	"github.com/xbarbosa1/campaign-studio/internal/entity"
)

// NoDataSentinel is returned by FormatReport when the generator produced no
// campaigns.
const NoDataSentinel = "No campaign data available"

// FormatReport flattens a campaign response into the human-readable report.
// Only the first campaign is rendered; the generator can return several but
// the workflow reports on one account at a time.
func FormatReport(resp *entity.CampaignResponse) string {
	if resp == nil || len(resp.Campaigns) == 0 {
		return NoDataSentinel
	}

	campaign := resp.Campaigns[0]

	var b strings.Builder
	b.WriteString("Campaign Generated:\n\n")
	fmt.Fprintf(&b, "Account: %s\n", campaign.AccountName)

	for i, email := range campaign.Emails {
		fmt.Fprintf(&b, "\nEmail %d:\n", i+1)
		for v, variant := range email.Variants {
			fmt.Fprintf(&b, "\nVariant %d:\n", v+1)
			fmt.Fprintf(&b, "Subject: %s\n", variant.Subject)
			fmt.Fprintf(&b, "Body: %s\n", variant.Body)
			fmt.Fprintf(&b, "Call to Action: %s\n", variant.CallToAction)
			fmt.Fprintf(&b, "Send Time: %s\n", variant.SuggestedSendTime)
		}
	}

	return b.String()
}
