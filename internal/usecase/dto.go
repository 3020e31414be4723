package usecase

// DraftInput is the raw, user-editable form state for one account profile.
// Everything arrives as strings; BuildRequest derives the wire shapes.
type DraftInput struct {
	AccountName       string `json:"account_name"`
	Industry          string `json:"industry"`
	PainPoints        string `json:"pain_points"`
	Contacts          string `json:"contacts"`
	CampaignObjective string `json:"campaign_objective"`
	Interest          string `json:"interest"`
	Tone              string `json:"tone"`
	Language          string `json:"language"`
	NumEmails         string `json:"num_emails"`
}

type GenerateCampaignsOutput struct {
	Report    string `json:"report"`
	Campaigns int    `json:"campaigns"`
}

type ExportCampaignsOutput struct {
	Filename string `json:"filename"`
	Content  []byte `json:"-"`
}

type NarrateEmailOutput struct {
	Audio    []byte `json:"-"`
	Language string `json:"language"`
}

type PreviewEmailInput struct {
	To string `json:"to"`
}
