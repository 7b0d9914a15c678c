// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-customer-service/internal/adapter"
	"github.com/MKhiriev/go-customer-service/models"
)

// loginModel renders username and password inputs and logs in through the
// adapter on enter. The program quits once the login succeeds.
type loginModel struct {
	ctx     context.Context
	adapter adapter.CustomerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	resp       models.AuthResponse
	done       bool
	quitByUser bool
}

func newLoginModel(ctx context.Context, a adapter.CustomerAdapter) loginModel {
	username := textinput.New()
	username.Placeholder = "email"
	username.CharLimit = 254
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 72
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{
		ctx:     ctx,
		adapter: a,
		inputs:  []textinput.Model{username, password},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.resp = result.resp
		m.done = true
		return m, tea.Quit
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyCtrlC, key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Email    │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nPassword │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[logging in...]")
	} else {
		b.WriteString("\n[log in]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("LOG IN", b.String(), "esc: cancel │ tab: next field │ enter: submit")
}

func (m loginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	a := m.adapter

	return func() tea.Msg {
		resp, _, err := a.Login(ctx, models.LoginRequest{Username: username, Password: password})
		return loginDoneMsg{resp: resp, err: err}
	}
}
