package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/festival-audit/internal/model"
	"github.com/nurpe/festival-audit/internal/repository"
	"github.com/nurpe/festival-audit/internal/session"
	"github.com/nurpe/festival-audit/internal/shell"
	"github.com/nurpe/festival-audit/internal/view"
)

type ReportGenerator interface {
	Generate(report model.DashboardReport) ([]byte, error)
}

type AppService struct {
	repo     *repository.SampleRepository
	sessions *session.Store
	pdf      ReportGenerator
	excel    ReportGenerator
	log      zerolog.Logger

	exportsMu sync.Mutex
	exports   map[string][]byte
}

type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Snapshot is a session's state together with what it renders to.
type Snapshot struct {
	State  shell.State `json:"state"`
	Screen view.Screen `json:"screen"`
}

// ActionInput is the loosely typed form of an action as it arrives from a
// client.
type ActionInput struct {
	Type     string `json:"type"`
	Tab      string `json:"tab,omitempty"`
	Area     string `json:"area,omitempty"`
	Festival string `json:"festival,omitempty"`
}

func NewAppService(repo *repository.SampleRepository, sessions *session.Store, pdf, excel ReportGenerator, log zerolog.Logger) *AppService {
	return &AppService{
		repo:     repo,
		sessions: sessions,
		pdf:      pdf,
		excel:    excel,
		log:      log,
		exports:  make(map[string][]byte),
	}
}

func (s *AppService) Repository() *repository.SampleRepository {
	return s.repo
}

func (s *AppService) NewSession() uuid.UUID {
	id, _ := s.sessions.Create()
	s.log.Debug().Str("session", id.String()).Msg("session created")
	return id
}

func (s *AppService) SessionExists(id uuid.UUID) bool {
	_, err := s.sessions.Get(id)
	return err == nil
}

// TouchSession extends a live session's expiry. It reports false for an
// unknown or expired session.
func (s *AppService) TouchSession(id uuid.UUID) bool {
	return s.sessions.Touch(id)
}

func (s *AppService) EndSession(id uuid.UUID) {
	s.sessions.Delete(id)
}

func (s *AppService) State(id uuid.UUID) (shell.State, error) {
	state, err := s.sessions.Get(id)
	if err != nil {
		return shell.State{}, mapSessionError(err)
	}
	return state, nil
}

func (s *AppService) Snapshot(id uuid.UUID) (*Snapshot, error) {
	state, err := s.State(id)
	if err != nil {
		return nil, err
	}
	return &Snapshot{State: state, Screen: view.Render(s.repo, state)}, nil
}

func (s *AppService) Dispatch(ctx context.Context, id uuid.UUID, action shell.Action) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	state, err := s.sessions.Update(id, func(current shell.State) shell.State {
		return shell.Apply(current, action)
	})
	if err != nil {
		return nil, mapSessionError(err)
	}

	event := s.log.Debug()
	if action.Type == shell.ActionSubmitAudit {
		event = s.log.Info()
	}
	event.
		Str("session", id.String()).
		Str("action", string(action.Type)).
		Str("tab", string(state.ActiveTab)).
		Str("level", string(state.Dashboard.Level)).
		Msg("action applied")

	return &Snapshot{State: state, Screen: view.Render(s.repo, state)}, nil
}

// ParseAction validates a client action. Unknown types and tabs are
// rejected; unknown festivals and areas pass through and are handled by the
// state machine.
func ParseAction(input ActionInput) (shell.Action, error) {
	actionType, err := shell.ParseActionType(input.Type)
	if err != nil {
		return shell.Action{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	action := shell.Action{Type: actionType}
	switch actionType {
	case shell.ActionSelectTab:
		tab, err := shell.ParseTab(input.Tab)
		if err != nil {
			return shell.Action{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		action.Tab = tab
	case shell.ActionSelectArea:
		action.Area = input.Area
	case shell.ActionSelectDashboardFestival, shell.ActionSelectAuditFestival:
		action.Festival = model.Festival(input.Festival)
	}
	return action, nil
}

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

var exportFiles = map[string]struct{ name, contentType string }{
	FormatPDF:  {"festival-audit-report.pdf", "application/pdf"},
	FormatXLSX: {"festival-audit-dashboard.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
}

// ExportForSession builds an export for a logged-in session.
func (s *AppService) ExportForSession(id uuid.UUID, format string) (*ExportResult, error) {
	state, err := s.State(id)
	if err != nil {
		return nil, err
	}
	if !state.LoggedIn {
		return nil, ErrUnauthorized
	}
	return s.Export(format)
}

// Export builds an export without a session, as the command line does.
func (s *AppService) Export(format string) (*ExportResult, error) {
	file, ok := exportFiles[format]
	if !ok {
		return nil, fmt.Errorf("%w: unknown export format %q", ErrInvalidInput, format)
	}
	gen := s.pdf
	if format == FormatXLSX {
		gen = s.excel
	}
	content, err := s.generate(format, gen)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: file.name, ContentType: file.contentType, Content: content}, nil
}

// generate memoizes exports; the sample tables never change.
func (s *AppService) generate(key string, gen ReportGenerator) ([]byte, error) {
	s.exportsMu.Lock()
	defer s.exportsMu.Unlock()

	if content, ok := s.exports[key]; ok {
		return content, nil
	}
	content, err := gen.Generate(s.repo.DashboardReport())
	if err != nil {
		s.log.Error().Err(err).Str("format", key).Msg("export failed")
		return nil, err
	}
	s.exports[key] = content
	return content, nil
}

func mapSessionError(err error) error {
	if errors.Is(err, session.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
