package entity

// Wire shapes of the remote generation service. Field names are snake_case on
// the wire and must not change, the generator contract depends on them.

type Objective string

const (
	ObjectiveAwareness Objective = "awareness"
	ObjectiveNurturing Objective = "nurturing"
	ObjectiveUpselling Objective = "upselling"
)

func (o Objective) Valid() bool {
	switch o {
	case ObjectiveAwareness, ObjectiveNurturing, ObjectiveUpselling:
		return true
	}
	return false
}

type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneNeutral      Tone = "neutral"
)

func (t Tone) Valid() bool {
	switch t {
	case ToneFormal, ToneCasual, ToneEnthusiastic, ToneNeutral:
		return true
	}
	return false
}

type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	JobTitle string `json:"job_title"`
}

type AccountProfile struct {
	AccountName       string    `json:"account_name"`
	Industry          string    `json:"industry"`
	PainPoints        []string  `json:"pain_points"`
	Contacts          []Contact `json:"contacts"`
	CampaignObjective Objective `json:"campaign_objective"`
	Interest          string    `json:"interest"`
	Tone              Tone      `json:"tone"`
	Language          string    `json:"language"`
}

type CampaignRequest struct {
	Accounts       []AccountProfile `json:"accounts"`
	NumberOfEmails int              `json:"number_of_emails"`
}

type Variant struct {
	Subject           string `json:"subject"`
	Body              string `json:"body"`
	CallToAction      string `json:"call_to_action"`
	SuggestedSendTime string `json:"suggested_send_time"`
}

type Email struct {
	Variants []Variant `json:"variants"`
}

type Campaign struct {
	AccountName string  `json:"account_name"`
	Emails      []Email `json:"emails"`
}

// CampaignResponse is produced wholesale by the generator and replaced, never
// partially updated.
type CampaignResponse struct {
	Campaigns []Campaign `json:"campaigns"`
}

// FirstVariant returns the first variant of the first email of the first
// campaign, which is the one narration reads.
func (r *CampaignResponse) FirstVariant() (Variant, bool) {
	if r == nil || len(r.Campaigns) == 0 {
		return Variant{}, false
	}
	c := r.Campaigns[0]
	if len(c.Emails) == 0 || len(c.Emails[0].Variants) == 0 {
		return Variant{}, false
	}
	return c.Emails[0].Variants[0], true
}
