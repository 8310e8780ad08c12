package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spotbird/spotmix/internal/models"
)

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case LoggedOutView:
		body = m.renderLoggedOut()
	case AuthenticatingView:
		body = m.renderAuthenticating()
	case DashboardView:
		body = m.renderDashboard()
	case ProcessingView:
		body = m.renderProcessing()
	case SuccessView:
		body = m.renderSuccess()
	case ErrorPausedView:
		body = m.renderErrorPaused()
	}

	if notice := m.renderNotice(); notice != "" {
		return notice + "\n\n" + body
	}
	return "\n" + body
}

func (m *Model) renderNotice() string {
	notice := m.notices.Current()
	if notice == nil {
		return ""
	}

	switch notice.Severity {
	case models.SeveritySuccess:
		return styles.ok.Render("✓ " + notice.Message)
	case models.SeverityWarning:
		return styles.warn.Render("! " + notice.Message)
	case models.SeverityError:
		return styles.err.Render("✗ " + notice.Message)
	default:
		return styles.faint.Render("• " + notice.Message)
	}
}

func (m *Model) renderLoggedOut() string {
	title := styles.title.Render("spotmix")
	prompt := "Paste your access token to begin."

	status := ""
	if m.authPending {
		status = styles.faint.Render("Connecting...")
	}

	helpKeys := []key.Binding{m.keys.submit, m.keys.reveal, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n\n%s", title, prompt, m.tokenInput.View(), status, helpView)
}

func (m *Model) renderAuthenticating() string {
	title := styles.title.Render("spotmix")
	return fmt.Sprintf("%s\n%s", title, styles.faint.Render("Restoring session..."))
}

func (m *Model) renderDashboard() string {
	title := styles.title.Render("Studio Control")

	who := ""
	if m.session.Profile != nil && m.session.Profile.DisplayName != "" {
		who = styles.faint.Render("Logged in as " + m.session.Profile.DisplayName)
	}

	var b strings.Builder
	b.WriteString(title)
	if who != "" {
		b.WriteString("\n" + who)
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderField("Playlist Name", m.form.name.View(), m.form.focus == focusName))
	b.WriteString(m.renderField("Track Quantity", m.form.count.View(), m.form.focus == focusCount))
	b.WriteString(m.renderField("Description", m.form.desc.View(), m.form.focus == focusDesc))

	b.WriteString(fmt.Sprintf("\n%s (%d selected)\n", m.fieldLabel("Genres", m.form.focus == focusGenres), m.form.selection.Len()))
	switch {
	case m.form.loading:
		b.WriteString(styles.faint.Render("Loading Genres...") + "\n")
	case len(m.form.catalog) == 0:
		b.WriteString(styles.warn.Render("Failed to load genres.") + " " + styles.help.Render("ctrl+r to retry") + "\n")
	default:
		b.WriteString(m.form.genres.View() + "\n")
	}

	helpKeys := []key.Binding{m.keys.next, m.keys.toggle, m.keys.generate, m.keys.logout, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))

	return b.String()
}

func (m *Model) fieldLabel(label string, focused bool) string {
	if focused {
		return styles.ok.Render("▸ " + label)
	}
	return styles.faint.Render("  " + label)
}

func (m *Model) renderField(label, input string, focused bool) string {
	return fmt.Sprintf("%s\n  %s\n", m.fieldLabel(label, focused), input)
}

func (m *Model) renderProcessing() string {
	title := styles.title.Render("Creating Magic...")
	percent := fmt.Sprintf("%d%%", m.sim.percent)
	bar := m.progressBar.ViewAs(float64(m.sim.percent) / 100)
	note := styles.faint.Render("Searching tracks and filling playlists.")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, percent, bar, note)
}

func (m *Model) renderSuccess() string {
	title := styles.ok.Render("Success!")

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString("Your playlists have been created.\n\n")
	for i, link := range m.links {
		b.WriteString(fmt.Sprintf("%d. %s\n   %s\n", i+1, link.Name, styles.faint.Render(link.URL)))
	}

	openKey := key.NewBinding(key.WithKeys("1"), key.WithHelp("1-9", "open link"))
	helpKeys := []key.Binding{openKey, m.keys.another, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))

	return b.String()
}

func (m *Model) renderErrorPaused() string {
	title := styles.err.Render("Access Paused")

	message := "An unknown error occurred."
	if m.errCtx != nil && m.errCtx.Message != "" {
		message = m.errCtx.Message
	}

	wait := ""
	if m.errCtx != nil && m.errCtx.RetryAfter > 0 {
		wait = fmt.Sprintf("\nEstimated wait time: %s\n", styles.warn.Render(fmt.Sprintf("%ds", m.errCtx.RetryAfter)))
	}

	helpKeys := []key.Binding{m.keys.updateToken, m.keys.retry, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s\n%s", title, message, wait, helpView)
}
