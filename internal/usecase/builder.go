package usecase

import (
	"strconv"
	"strings"

	"github.com/xbarbosa1/campaign-studio/internal/entity"
)

const placeholderJobTitle = "Marketing Manager"

const (
	minEmails = 1
	maxEmails = 10
)

// Builder turns a raw draft into the canonical request the generator expects.
// DefaultTone covers drafts that leave the tone unset; it is configuration,
// not a second derivation path.
type Builder struct {
	DefaultTone entity.Tone
}

func NewBuilder(defaultTone entity.Tone) Builder {
	if !defaultTone.Valid() {
		defaultTone = entity.ToneNeutral
	}
	return Builder{DefaultTone: defaultTone}
}

// BuildRequest is pure and total: no network, no side effects, no failure.
// Malformed num_emails is expected to be caught by ValidateDraft first; here
// it degrades to the minimum instead of failing. Out-of-range values are
// clamped to [1,10].
func (b Builder) BuildRequest(draft DraftInput) entity.CampaignRequest {
	profile := entity.AccountProfile{
		AccountName:       draft.AccountName,
		Industry:          draft.Industry,
		PainPoints:        splitList(draft.PainPoints),
		Contacts:          buildContacts(draft.Contacts),
		CampaignObjective: objectiveOrDefault(draft.CampaignObjective),
		Interest:          draft.Interest,
		Tone:              b.toneOrDefault(draft.Tone),
		Language:          draft.Language,
	}

	// The generator accepts batches, but this workflow submits exactly one
	// profile per call.
	return entity.CampaignRequest{
		Accounts:       []entity.AccountProfile{profile},
		NumberOfEmails: clampEmails(draft.NumEmails),
	}
}

// DeriveContactEmail synthesizes a deterministic address from a contact name:
// lowercase, whitespace runs collapsed to a single dot, fixed domain.
func DeriveContactEmail(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), ".") + "@example.com"
}

func buildContacts(list string) []entity.Contact {
	tokens := splitList(list)
	contacts := make([]entity.Contact, 0, len(tokens))
	for _, name := range tokens {
		contacts = append(contacts, entity.Contact{
			Name:     name,
			Email:    DeriveContactEmail(name),
			JobTitle: placeholderJobTitle,
		})
	}
	return contacts
}

// splitList splits on commas, trims each token and drops the ones that end up
// empty. Order is preserved.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func objectiveOrDefault(raw string) entity.Objective {
	if o := entity.Objective(raw); o.Valid() {
		return o
	}
	return entity.ObjectiveAwareness
}

func (b Builder) toneOrDefault(raw string) entity.Tone {
	if t := entity.Tone(raw); t.Valid() {
		return t
	}
	return b.DefaultTone
}

func clampEmails(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < minEmails {
		return minEmails
	}
	if n > maxEmails {
		return maxEmails
	}
	return n
}
