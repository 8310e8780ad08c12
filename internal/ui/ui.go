package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spotbird/spotmix/internal/models"
	"github.com/spotbird/spotmix/internal/services"
	"github.com/spotbird/spotmix/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoggedOutView ViewState = iota
	AuthenticatingView
	DashboardView
	ProcessingView
	SuccessView
	ErrorPausedView
)

// CredentialStore persists the access token between runs. Implementations
// must degrade to "no saved token" when storage is unavailable.
type CredentialStore interface {
	Load() (string, bool)
	Save(token string)
	Clear()
}

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	view   ViewState
	svc    services.Service
	store  CredentialStore
	logger *log.Logger

	session    models.Session
	tokenInput textinput.Model
	form       dashboardForm

	sim         simulator
	progressBar progress.Model
	notices     notifier

	errCtx *models.ErrorContext
	links  []models.ResultLink

	// One outstanding call of each kind at a time; resolutions identify the
	// request that produced them so late arrivals are dropped.
	authPending bool
	authID      uuid.UUID
	genPending  bool
	genID       uuid.UUID

	width  int
	height int
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, svc services.Service, store CredentialStore, defaults shared.DefaultsConfig, logger *log.Logger) *Model {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	tokenInput := textinput.New()
	tokenInput.Placeholder = "Paste User Token Here"
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.CharLimit = 512
	tokenInput.Focus()

	return &Model{
		ctx:         ctx,
		view:        LoggedOutView,
		svc:         svc,
		store:       store,
		logger:      logger,
		tokenInput:  tokenInput,
		form:        newDashboardForm(defaults),
		progressBar: progress.New(progress.WithDefaultGradient()),
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init attempts silent session recovery from the credential store.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg {
		token, ok := m.store.Load()
		return savedTokenMsg{token: token, ok: ok}
	})
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.setSize(msg.Width, msg.Height)
		m.progressBar.Width = min(msg.Width-8, 50)
		return m, nil

	case savedTokenMsg:
		if !msg.ok {
			return m, nil
		}
		m.view = AuthenticatingView
		return m, m.authenticate(msg.token, true)

	case authResultMsg:
		return m.handleAuthResult(msg)

	case genresMsg:
		return m.handleGenres(msg)

	case generateResultMsg:
		return m.handleGenerateResult(msg)

	case progressTickMsg:
		if m.view != ProcessingView {
			return m, nil
		}
		return m, m.sim.advance(msg)

	case noticeExpireMsg:
		m.notices.expire(msg)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoggedOutView:
			return m.handleLoggedOutKeys(msg)
		case AuthenticatingView:
			return m.handleAuthenticatingKeys(msg)
		case DashboardView:
			return m.handleDashboardKeys(msg)
		case ProcessingView:
			return m.handleProcessingKeys(msg)
		case SuccessView:
			return m.handleSuccessKeys(msg)
		case ErrorPausedView:
			return m.handleErrorPausedKeys(msg)
		}
	}

	return m, m.updateFocused(msg)
}

// authenticate issues an authenticate call tagged with a fresh request id.
func (m *Model) authenticate(token string, silent bool) tea.Cmd {
	id := uuid.New()
	m.authID = id
	m.authPending = true

	return func() tea.Msg {
		return authResultMsg{id: id, outcome: m.svc.Authenticate(m.ctx, token), silent: silent}
	}
}

// fetchGenres issues a genre catalog fetch.
func (m *Model) fetchGenres() tea.Cmd {
	m.form.loading = true
	return func() tea.Msg {
		return genresMsg{outcome: m.svc.FetchGenres(m.ctx)}
	}
}

// executeGeneration issues a generation run tagged with a fresh request id.
func (m *Model) executeGeneration(req models.PlaylistRequest) tea.Cmd {
	id := uuid.New()
	m.genID = id
	m.genPending = true

	token := m.session.Token
	return func() tea.Msg {
		return generateResultMsg{id: id, outcome: m.svc.ExecuteGeneration(m.ctx, token, req)}
	}
}

func (m *Model) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.authID {
		// Resolution of a superseded request.
		return m, nil
	}
	m.authPending = false

	if msg.silent && !msg.outcome.Succeeded() {
		// Cold-start recovery failed: drop the stale credential without
		// bothering the user. An explicit login failure is noisier.
		m.logger.Debug("silent recovery failed", "kind", msg.outcome.Kind.String())
		m.store.Clear()
		m.view = LoggedOutView
		return m, nil
	}

	switch msg.outcome.Kind {
	case services.Success:
		result := msg.outcome.Payload
		m.session = result.Session
		m.store.Save(result.NormalizedToken)
		m.errCtx = nil
		m.view = DashboardView

		greeting := "Welcome, " + m.session.DisplayName("User") + "!"
		if msg.silent {
			greeting = "Welcome back, " + m.session.DisplayName("User") + "!"
		}
		return m, tea.Batch(m.fetchGenres(), m.notices.post(greeting, models.SeveritySuccess))

	case services.RateLimited:
		m.errCtx = &models.ErrorContext{
			Kind:       models.ErrorRateLimited,
			Message:    msg.outcome.Message,
			RetryAfter: msg.outcome.RetryAfter,
		}
		m.view = ErrorPausedView
		return m, m.notices.post(msg.outcome.Message, models.SeverityError)

	case services.Forbidden:
		return m, m.notices.post(msg.outcome.Message, models.SeverityWarning)

	default: // AuthFailed, Generic, Transport
		return m, m.notices.post(msg.outcome.Message, models.SeverityError)
	}
}

func (m *Model) handleGenres(msg genresMsg) (tea.Model, tea.Cmd) {
	m.form.loading = false

	if !msg.outcome.Succeeded() {
		m.logger.Warn("genre fetch failed", "kind", msg.outcome.Kind.String(), "message", msg.outcome.Message)
		return m, m.notices.post("Failed to load genres.", models.SeverityError)
	}

	if len(msg.outcome.Payload) == 0 {
		return m, m.notices.post("No genres loaded from server.", models.SeverityWarning)
	}

	m.form.setCatalog(msg.outcome.Payload)
	return m, nil
}

func (m *Model) handleGenerateResult(msg generateResultMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.genID {
		return m, nil
	}
	m.genPending = false

	if m.view != ProcessingView {
		// The view moved on; a late result must not resurface.
		return m, nil
	}

	m.sim.stop()

	switch msg.outcome.Kind {
	case services.Success:
		m.links = msg.outcome.Payload
		m.view = SuccessView
		return m, m.notices.post("Playlists created successfully!", models.SeveritySuccess)

	case services.RateLimited:
		m.errCtx = &models.ErrorContext{
			Kind:       models.ErrorRateLimited,
			Message:    msg.outcome.Message,
			RetryAfter: msg.outcome.RetryAfter,
		}
		m.view = ErrorPausedView
		return m, nil

	default:
		m.view = DashboardView
		return m, m.notices.post("Error: "+msg.outcome.Message, models.SeverityError)
	}
}

func (m *Model) handleLoggedOutKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		if m.tokenInput.EchoMode == textinput.EchoPassword {
			m.tokenInput.EchoMode = textinput.EchoNormal
		} else {
			m.tokenInput.EchoMode = textinput.EchoPassword
		}
		return m, nil
	case "enter":
		return m.submitToken()
	}

	var cmd tea.Cmd
	m.tokenInput, cmd = m.tokenInput.Update(msg)
	return m, cmd
}

func (m *Model) submitToken() (tea.Model, tea.Cmd) {
	if m.authPending {
		return m, nil
	}

	token := strings.TrimSpace(m.tokenInput.Value())
	if token == "" {
		return m, m.notices.post("Please paste your token first!", models.SeverityError)
	}

	return m, m.authenticate(token, false)
}

func (m *Model) handleAuthenticatingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+o":
		return m.logout()
	case "ctrl+g":
		return m.submitGeneration()
	case "ctrl+r":
		if m.form.loading {
			return m, nil
		}
		return m, m.fetchGenres()
	case "ctrl+x":
		m.form.clearSelection()
		return m, nil
	case "tab":
		return m, m.form.cycleFocus(false)
	case "shift+tab":
		return m, m.form.cycleFocus(true)
	case "enter", " ":
		if m.form.focus == focusGenres {
			m.form.toggleCurrent()
			return m, nil
		}
	}

	return m, m.form.update(msg)
}

func (m *Model) logout() (tea.Model, tea.Cmd) {
	m.session = models.Session{}
	m.store.Clear()
	m.links = nil
	m.errCtx = nil
	m.tokenInput.SetValue("")
	m.view = LoggedOutView
	return m, m.notices.post("Logged out successfully.", models.SeverityInfo)
}

func (m *Model) submitGeneration() (tea.Model, tea.Cmd) {
	if m.genPending {
		return m, nil
	}

	req, err := m.form.buildRequest()
	if err != nil {
		return m, m.notices.post(err.Error(), models.SeverityError)
	}

	m.links = nil
	m.errCtx = nil
	m.view = ProcessingView
	return m, tea.Batch(m.sim.start(), m.executeGeneration(req))
}

func (m *Model) handleProcessingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleSuccessKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		m.links = nil
		m.view = DashboardView
		return m, nil
	}

	// Digits open the corresponding result link in the browser.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(m.links) {
			if err := shared.OpenBrowser(m.links[idx].URL); err != nil {
				m.logger.Warn("failed to open browser", "error", err)
				return m, m.notices.post("Could not open browser.", models.SeverityWarning)
			}
		}
	}
	return m, nil
}

func (m *Model) handleErrorPausedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "u":
		m.session = models.Session{}
		m.errCtx = nil
		m.tokenInput.SetValue("")
		m.view = LoggedOutView
		return m, nil
	case "t":
		m.errCtx = nil
		m.view = DashboardView
		return m, nil
	}
	return m, nil
}

// updateFocused forwards non-key messages (cursor blinks and the like) to the
// active input component.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	switch m.view {
	case LoggedOutView:
		var cmd tea.Cmd
		m.tokenInput, cmd = m.tokenInput.Update(msg)
		return cmd
	case DashboardView:
		return m.form.update(msg)
	}
	return nil
}
