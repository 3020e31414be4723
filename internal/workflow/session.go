package workflow

import (
	"context"
	"sync"

	"github.com/xbarbosa1/campaign-studio/internal/entity"
	"github.com/xbarbosa1/campaign-studio/internal/usecase"
)

type State string

const (
	StateIdle       State = "IDLE"
	StateSubmitting State = "SUBMITTING"
	StateReady      State = "READY"
)

// Session is the single mutable state of the workflow: the account drafts,
// the latest generation result and the transient flags of the three actions.
// The response slot is written only by the generate path; export and narrate
// read it but never write it.
type Session struct {
	mu sync.Mutex

	generate *usecase.GenerateCampaignsUseCase
	export   *usecase.ExportCampaignsUseCase
	narrate  *usecase.NarrateEmailUseCase
	preview  *usecase.PreviewEmailUseCase

	drafts []usecase.DraftInput

	state    State
	response *entity.CampaignResponse
	report   string
	lastErr  string
	language string

	// submitSeq/appliedSeq make result application last-completed-wins, so a
	// stale response can never overwrite a newer one.
	submitSeq  uint64
	appliedSeq uint64

	exporting bool
	narrating bool
	audio     []byte
}

type Snapshot struct {
	State     State  `json:"state"`
	Report    string `json:"report"`
	Error     string `json:"error"`
	Accounts  int    `json:"accounts"`
	Campaigns int    `json:"campaigns"`
	HasAudio  bool   `json:"has_audio"`
}

func NewSession(
	generate *usecase.GenerateCampaignsUseCase,
	export *usecase.ExportCampaignsUseCase,
	narrate *usecase.NarrateEmailUseCase,
	preview *usecase.PreviewEmailUseCase,
) *Session {
	return &Session{
		generate: generate,
		export:   export,
		narrate:  narrate,
		preview:  preview,
		state:    StateIdle,
	}
}

// AddDraft appends an account draft and returns its index.
func (s *Session) AddDraft(draft usecase.DraftInput) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = append(s.drafts, draft)
	return len(s.drafts) - 1
}

func (s *Session) UpdateDraft(index int, draft usecase.DraftInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.drafts) {
		return &usecase.DomainError{Code: "NO_ACCOUNT", Message: "account does not exist"}
	}
	s.drafts[index] = draft
	return nil
}

func (s *Session) RemoveDraft(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.drafts) {
		return &usecase.DomainError{Code: "NO_ACCOUNT", Message: "account does not exist"}
	}
	s.drafts = append(s.drafts[:index], s.drafts[index+1:]...)
	return nil
}

func (s *Session) Drafts() []usecase.DraftInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]usecase.DraftInput, len(s.drafts))
	copy(out, s.drafts)
	return out
}

// Generate submits one account draft. A second submission while one is in
// flight is rejected outright; it is not an error state, just a closed door.
// A failed generation sets the visible error and keeps any prior report
// intact.
func (s *Session) Generate(ctx context.Context, accountIndex int) (string, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return "", &usecase.DomainError{Code: "GENERATION_IN_FLIGHT", Message: "a generation is already in progress"}
	}
	draft, err := s.draftAtLocked(accountIndex)
	if err != nil {
		s.lastErr = "Error generating campaigns: " + err.Error()
		s.mu.Unlock()
		return "", err
	}
	s.state = StateSubmitting
	s.submitSeq++
	seq := s.submitSeq
	s.mu.Unlock()

	resp, err := s.generate.Execute(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.appliedSeq {
		// A later submission already completed; this result is stale.
		return s.report, nil
	}
	s.appliedSeq = seq

	if err != nil {
		s.lastErr = "Error generating campaigns: " + err.Error()
		if s.response != nil {
			s.state = StateReady
		} else {
			s.state = StateIdle
		}
		return "", err
	}

	s.response = resp
	s.report = usecase.FormatReport(resp)
	s.language = draft.Language
	s.lastErr = ""
	s.state = StateReady
	return s.report, nil
}

// Export runs its own request against the generator; it does not need a prior
// generation and never touches the latest-response slot.
func (s *Session) Export(ctx context.Context, accountIndex int) (*usecase.ExportCampaignsOutput, error) {
	s.mu.Lock()
	if s.exporting {
		s.mu.Unlock()
		return nil, &usecase.DomainError{Code: "EXPORT_IN_FLIGHT", Message: "an export is already in progress"}
	}
	draft, err := s.draftAtLocked(accountIndex)
	if err != nil {
		s.lastErr = "Error exporting CSV: " + err.Error()
		s.mu.Unlock()
		return nil, err
	}
	s.exporting = true
	s.mu.Unlock()

	out, err := s.export.Execute(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.exporting = false

	if err != nil {
		s.lastErr = "Error exporting CSV: " + err.Error()
		return nil, err
	}
	return out, nil
}

// Narrate converts the first generated email body to audio. Without a ready
// result it fails locally, before any network call.
func (s *Session) Narrate(ctx context.Context) (*usecase.NarrateEmailOutput, error) {
	s.mu.Lock()
	if s.narrating {
		s.mu.Unlock()
		return nil, &usecase.DomainError{Code: "NARRATION_IN_FLIGHT", Message: "a narration is already in progress"}
	}
	resp := s.response
	language := s.language
	s.narrating = true
	s.mu.Unlock()

	out, err := s.narrate.Execute(ctx, resp, language)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.narrating = false

	if err != nil {
		s.lastErr = "Error generating audio: " + err.Error()
		return nil, err
	}

	s.audio = out.Audio
	return out, nil
}

// Preview sends the first generated variant to a real inbox.
func (s *Session) Preview(input usecase.PreviewEmailInput) error {
	s.mu.Lock()
	resp := s.response
	s.mu.Unlock()

	if err := s.preview.Execute(input, resp); err != nil {
		s.mu.Lock()
		s.lastErr = "Error sending preview: " + err.Error()
		s.mu.Unlock()
		return err
	}
	return nil
}

// Audio returns the last narration payload, if any.
func (s *Session) Audio() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audio == nil {
		return nil, false
	}
	return s.audio, true
}

// ClearAudio releases the retained narration payload.
func (s *Session) ClearAudio() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audio = nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaigns := 0
	if s.response != nil {
		campaigns = len(s.response.Campaigns)
	}

	return Snapshot{
		State:     s.state,
		Report:    s.report,
		Error:     s.lastErr,
		Accounts:  len(s.drafts),
		Campaigns: campaigns,
		HasAudio:  s.audio != nil,
	}
}

func (s *Session) draftAtLocked(index int) (usecase.DraftInput, error) {
	if index < 0 || index >= len(s.drafts) {
		return usecase.DraftInput{}, &usecase.DomainError{Code: "NO_ACCOUNT", Message: "account does not exist"}
	}
	return s.drafts[index], nil
}
