package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xbarbosa1/campaign-studio/internal/entity"
)

func sampleDraft() DraftInput {
	return DraftInput{
		AccountName:       "Acme",
		Industry:          "Retail",
		PainPoints:        "slow checkout, low margins",
		Contacts:          "Jane Doe, Bob Lee",
		CampaignObjective: "nurturing",
		Interest:          "loyalty programs",
		Tone:              "casual",
		Language:          "en",
		NumEmails:         "2",
	}
}

func TestBuildRequestFullDraft(t *testing.T) {
	builder := NewBuilder(entity.ToneFormal)

	req := builder.BuildRequest(sampleDraft())

	assert.Len(t, req.Accounts, 1)
	profile := req.Accounts[0]

	assert.Equal(t, "Acme", profile.AccountName)
	assert.Equal(t, "Retail", profile.Industry)
	assert.Equal(t, []string{"slow checkout", "low margins"}, profile.PainPoints)
	assert.Equal(t, []entity.Contact{
		{Name: "Jane Doe", Email: "jane.doe@example.com", JobTitle: "Marketing Manager"},
		{Name: "Bob Lee", Email: "bob.lee@example.com", JobTitle: "Marketing Manager"},
	}, profile.Contacts)
	assert.Equal(t, entity.ObjectiveNurturing, profile.CampaignObjective)
	assert.Equal(t, "loyalty programs", profile.Interest)
	assert.Equal(t, entity.ToneCasual, profile.Tone)
	assert.Equal(t, "en", profile.Language)
	assert.Equal(t, 2, req.NumberOfEmails)
}

func TestBuildRequestContactsInOrderDroppingEmptyTokens(t *testing.T) {
	builder := NewBuilder(entity.ToneFormal)
	draft := sampleDraft()
	draft.Contacts = " Ana Souza ,, Bob ,   , Carla X"

	req := builder.BuildRequest(draft)

	contacts := req.Accounts[0].Contacts
	assert.Len(t, contacts, 3)
	assert.Equal(t, "Ana Souza", contacts[0].Name)
	assert.Equal(t, "ana.souza@example.com", contacts[0].Email)
	assert.Equal(t, "Bob", contacts[1].Name)
	assert.Equal(t, "bob@example.com", contacts[1].Email)
	assert.Equal(t, "Carla X", contacts[2].Name)
	assert.Equal(t, "carla.x@example.com", contacts[2].Email)
}

func TestBuildRequestIsIdempotent(t *testing.T) {
	builder := NewBuilder(entity.ToneFormal)
	draft := sampleDraft()

	first := builder.BuildRequest(draft)
	second := builder.BuildRequest(draft)

	assert.Equal(t, first, second)
}

func TestBuildRequestDefaults(t *testing.T) {
	builder := NewBuilder(entity.ToneNeutral)
	draft := sampleDraft()
	draft.CampaignObjective = ""
	draft.Tone = ""

	req := builder.BuildRequest(draft)

	assert.Equal(t, entity.ObjectiveAwareness, req.Accounts[0].CampaignObjective)
	assert.Equal(t, entity.ToneNeutral, req.Accounts[0].Tone)
}

func TestBuildRequestUnknownEnumFallsBack(t *testing.T) {
	builder := NewBuilder(entity.ToneFormal)
	draft := sampleDraft()
	draft.CampaignObjective = "world domination"
	draft.Tone = "shouty"

	req := builder.BuildRequest(draft)

	assert.Equal(t, entity.ObjectiveAwareness, req.Accounts[0].CampaignObjective)
	assert.Equal(t, entity.ToneFormal, req.Accounts[0].Tone)
}

func TestBuildRequestClampsNumEmails(t *testing.T) {
	builder := NewBuilder(entity.ToneFormal)

	cases := []struct {
		raw  string
		want int
	}{
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"10", 10},
		{"42", 10},
		{"not a number", 1},
		{"", 1},
	}

	for _, tc := range cases {
		draft := sampleDraft()
		draft.NumEmails = tc.raw
		req := builder.BuildRequest(draft)
		assert.Equal(t, tc.want, req.NumberOfEmails, "num_emails=%q", tc.raw)
	}
}

func TestDeriveContactEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", DeriveContactEmail("Jane Doe"))
	assert.Equal(t, "jane.doe@example.com", DeriveContactEmail("JANE   DOE"))
	assert.Equal(t, "bob@example.com", DeriveContactEmail("Bob"))
	// Re-derivation is deterministic.
	assert.Equal(t, DeriveContactEmail("Maria Silva"), DeriveContactEmail("Maria Silva"))
}
