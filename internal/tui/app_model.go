// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/rf-checker/internal/service"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenCheck screen = iota
	screenSettings
	screenAccount
	screenCount
)

func (s screen) String() string {
	switch s {
	case screenSettings:
		return "Settings"
	case screenAccount:
		return "Account"
	default:
		return "Check"
	}
}

const statusTTL = 2 * time.Second

type appModel struct {
	ctx   context.Context
	popup Popup
	auth  service.Auth

	tab           models.Tab
	currentScreen screen
	loading       bool

	check    checkModel
	settings settingsModel
	account  accountModel

	showError    bool
	errorOverlay errorOverlayModel
}

func newAppModel(ctx context.Context, p Popup, auth service.Auth, tab models.Tab) appModel {
	m := appModel{
		ctx:      ctx,
		popup:    p,
		auth:     auth,
		tab:      tab,
		loading:  true,
		check:    newCheckModel(),
		settings: newSettingsModel(),
		account:  newAccountModel(),
	}
	m.check.tab = tab
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoad())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.check.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if key.Matches(msg, keys.nextScreen) {
			m.switchTo((m.currentScreen + 1) % screenCount)
			return m, textinput.Blink
		}

	case stateLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showError = true
			m.errorOverlay.message = humanizeError(msg.err)
			return m, nil
		}
		m.applyState(msg)
		return m, nil

	case checkDoneMsg:
		m.check.checking = false
		if msg.err != nil {
			m.check.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.check.errMsg = ""
		check := msg.check
		m.check.last = &check
		return m, nil

	case settingsSavedMsg:
		m.settings.saving = false
		if msg.err != nil {
			m.settings.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.settings.errMsg = ""
		m.settings.status = "✅ Settings saved"
		m.account.creds.APIURL, m.account.creds.APIKey = msg.apiURL, msg.apiKey
		return m, clearStatusAfter(statusTTL)

	case accountDoneMsg:
		return m.applyAccount(msg)

	case clearStatusMsg:
		m.settings.status = ""
		m.account.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.check.checking {
			return m, nil
		}
		var cmd tea.Cmd
		m.check.spinner, cmd = m.check.spinner.Update(msg)
		return m, cmd
	}

	switch m.currentScreen {
	case screenSettings:
		return m.updateSettings(msg)
	case screenAccount:
		return m.updateAccount(msg)
	default:
		return m.updateCheck(msg)
	}
}

func (m appModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}
	if m.loading {
		return appStyle.Render("Loading...")
	}

	var body string
	switch m.currentScreen {
	case screenSettings:
		body = m.settings.View()
	case screenAccount:
		body = m.account.View()
	default:
		body = m.check.View()
	}

	return appStyle.Render(m.tabsView() + "\n\n" + body)
}

func (m appModel) tabsView() string {
	out := ""
	for s := screenCheck; s < screenCount; s++ {
		if s > screenCheck {
			out += "  "
		}
		if s == m.currentScreen {
			out += activeTabStyle.Render(s.String())
		} else {
			out += helpStyle.Render(s.String())
		}
	}
	return out
}

func (m *appModel) switchTo(s screen) {
	m.check.input.Blur()
	for i := range m.settings.inputs {
		m.settings.inputs[i].Blur()
	}
	for i := range m.account.inputs {
		m.account.inputs[i].Blur()
	}

	m.currentScreen = s
	switch s {
	case screenSettings:
		m.settings.inputs[m.settings.focus].Focus()
	case screenAccount:
		m.account.inputs[m.account.focus].Focus()
	default:
		m.check.input.Focus()
	}
}

func (m *appModel) applyState(msg stateLoadedMsg) {
	st := msg.state
	m.tab = st.Tab
	m.check.tab = st.Tab
	m.check.last = st.LastCheck
	m.check.prefill(st.Selection)
	m.settings.load(st.Credentials.APIURL, st.Credentials.APIKey)
	m.account.creds = st.Credentials
	m.account.inputs[0].SetValue(st.Credentials.Username)
}

func (m appModel) applyAccount(msg accountDoneMsg) (tea.Model, tea.Cmd) {
	m.account.busy = false
	if msg.err != nil {
		m.account.errMsg = humanizeError(msg.err)
		return m, nil
	}

	m.account.errMsg = ""
	m.account.creds = msg.creds
	m.account.inputs[1].SetValue("")
	m.settings.load(msg.creds.APIURL, msg.creds.APIKey)

	switch msg.action {
	case actionRegister:
		m.account.status = "✅ Account created"
	case actionRegenerate:
		m.account.status = "✅ New API key stored"
	case actionLogout:
		m.account.status = "Logged out"
		m.account.inputs[0].SetValue("")
	default:
		m.account.status = "✅ Logged in"
	}
	return m, clearStatusAfter(statusTTL)
}

func (m appModel) updateCheck(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			if m.check.checking {
				return m, nil
			}
			m.check.checking = true
			m.check.errMsg = ""
			return m, tea.Batch(m.check.spinner.Tick, m.cmdCheck(m.check.input.Value(), m.tab.URL))
		case key.Matches(keyMsg, keys.esc):
			m.check.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.check.input, cmd = m.check.input.Update(msg)
	return m, cmd
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.settings.focus = cycleFocus(m.settings.inputs, m.settings.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.settings.focus = cycleFocus(m.settings.inputs, m.settings.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.settings.saving {
				return m, nil
			}
			m.settings.saving = true
			m.settings.status, m.settings.errMsg = "", ""
			apiURL, apiKey := m.settings.values()
			return m, m.cmdSaveSettings(apiURL, apiKey)
		}
	}

	var cmd tea.Cmd
	m.settings.inputs[m.settings.focus], cmd = m.settings.inputs[m.settings.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateAccount(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		action := ""
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.account.focus = cycleFocus(m.account.inputs, m.account.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.account.focus = cycleFocus(m.account.inputs, m.account.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			action = actionLogin
		case key.Matches(keyMsg, keys.register):
			action = actionRegister
		case key.Matches(keyMsg, keys.regenerate):
			action = actionRegenerate
		case key.Matches(keyMsg, keys.logout):
			action = actionLogout
		}

		if action != "" {
			if m.account.busy {
				return m, nil
			}
			req := m.account.request()
			if action != actionLogout && (req.Username == "" || req.Password == "") {
				m.account.errMsg = "Username and password are required"
				return m, nil
			}
			m.account.busy = true
			m.account.status, m.account.errMsg = "", ""
			return m, m.cmdAccount(action, req)
		}
	}

	var cmd tea.Cmd
	m.account.inputs[m.account.focus], cmd = m.account.inputs[m.account.focus].Update(msg)
	return m, cmd
}

func cycleFocus(inputs []textinput.Model, focus, step int) int {
	inputs[focus].Blur()
	focus = (focus + step + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func (m appModel) cmdLoad() tea.Cmd {
	ctx, p, tab := m.ctx, m.popup, m.tab
	return func() tea.Msg {
		state, err := p.Load(ctx, tab)
		return stateLoadedMsg{state: state, err: err}
	}
}

func (m appModel) cmdCheck(input, tabURL string) tea.Cmd {
	ctx, p := m.ctx, m.popup
	return func() tea.Msg {
		check, err := p.Check(ctx, input, tabURL)
		return checkDoneMsg{check: check, err: err}
	}
}

func (m appModel) cmdSaveSettings(apiURL, apiKey string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		err := auth.SaveSettings(ctx, apiURL, apiKey)
		return settingsSavedMsg{apiURL: apiURL, apiKey: apiKey, err: err}
	}
}

func (m appModel) cmdAccount(action string, req models.AuthRequest) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	apiURL, _ := m.settings.values()

	return func() tea.Msg {
		var (
			creds models.Credentials
			err   error
		)
		switch action {
		case actionRegister:
			creds, err = auth.Register(ctx, apiURL, req)
		case actionRegenerate:
			creds, err = auth.RegenerateKey(ctx, apiURL, req)
		case actionLogout:
			if err = auth.Logout(ctx); err == nil {
				creds, err = auth.Credentials(ctx)
			}
		default:
			creds, err = auth.Login(ctx, apiURL, req)
		}
		return accountDoneMsg{creds: creds, action: action, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
