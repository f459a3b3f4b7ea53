// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-discount-client/internal/app"
	"github.com/MKhiriev/go-discount-client/internal/service"
	"github.com/MKhiriev/go-discount-client/models"
)

const menuText = `Choose an action:
1 - Call Ping
2 - Call GenerateCodes (Enter Count & Length)
3 - Call UseCode (Enter Code)
4 - Call GetUsedCodes
5 - Call GetUnusedCodes
0 - Exit`

const (
	promptChoice = "Enter your choice: "
	promptCount  = "Enter Count: "
	promptLength = "Enter Length (7 or 8): "
	promptCode   = "Enter Code (7 or 8 characters): "

	lastResultHeader = "Last Result:"
)

type stage int

const (
	stageChoice stage = iota
	stageCount
	stageLength
	stageCode
	stageBusy
)

type menuModel struct {
	ctx       context.Context
	discount  service.DiscountService
	buildInfo models.AppBuildInfo
	states    <-chan models.ConnectionState

	stage      stage
	input      textinput.Model
	spinner    spinner.Model
	busyLabel  string
	countInput string
	lastResult string
	status     string
	connState  models.ConnectionState

	copyToClipboard func(string) error
	exiting         bool
}

func newMenuModel(ctx context.Context, services *service.ClientServices, states <-chan models.ConnectionState) menuModel {
	input := textinput.New()
	input.Width = 40
	input.Prompt = promptChoice
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := menuModel{
		ctx:             ctx,
		discount:        services.DiscountService,
		states:          states,
		input:           input,
		spinner:         s,
		connState:       models.ConnectionConnected,
		copyToClipboard: clipboard.WriteAll,
	}
	if services.AppInfoService != nil {
		m.buildInfo = services.AppInfoService.GetBuildInfo(ctx)
	}
	return m
}

func (m menuModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForState(m.states))
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectionStateMsg:
		m.connState = msg.state
		return m, waitForState(m.states)
	case stateStreamClosedMsg:
		return m, nil
	case resultMsg:
		m.lastResult = msg.text
		m.status = ""
		cmd := m.prompt(stageChoice)
		return m, cmd
	case spinner.TickMsg:
		if m.stage != stageBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m menuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m.exit()
	case key.Matches(msg, keys.copy):
		m.copyLastResult()
		return m, nil
	}

	// one command at a time: input is ignored while a call is in flight
	if m.stage == stageBusy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.back):
		if m.stage != stageChoice {
			m.status = ""
			cmd := m.prompt(stageChoice)
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, keys.submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m menuModel) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	switch m.stage {
	case stageChoice:
		return m.dispatch(value)
	case stageCount:
		m.countInput = value
		cmd := m.prompt(stageLength)
		return m, cmd
	case stageLength:
		count := m.countInput
		return m.call("GenerateCodes", func(ctx context.Context) string {
			return m.discount.GenerateCodes(ctx, count, value)
		})
	case stageCode:
		return m.call("UseCode", func(ctx context.Context) string {
			return m.discount.UseCode(ctx, value)
		})
	}

	return m, nil
}

func (m menuModel) dispatch(choice string) (tea.Model, tea.Cmd) {
	switch choice {
	case "1":
		return m.call("Ping", m.discount.Ping)
	case "2":
		cmd := m.prompt(stageCount)
		return m, cmd
	case "3":
		cmd := m.prompt(stageCode)
		return m, cmd
	case "4":
		return m.call("GetUsedCodes", m.discount.GetUsedCodes)
	case "5":
		return m.call("GetUnusedCodes", m.discount.GetUnusedCodes)
	case "0":
		return m.exit()
	default:
		m.lastResult = app.MsgInvalidChoice
		m.status = ""
		m.input.Reset()
		return m, nil
	}
}

func (m menuModel) call(label string, handler func(ctx context.Context) string) (tea.Model, tea.Cmd) {
	m.stage = stageBusy
	m.busyLabel = label
	m.status = ""
	m.input.Reset()
	m.input.Blur()

	ctx := m.ctx
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return resultMsg{text: handler(ctx)}
	})
}

// prompt switches to stage s with an empty, focused input.
func (m *menuModel) prompt(s stage) tea.Cmd {
	m.stage = s
	m.input.Reset()

	switch s {
	case stageCount:
		m.input.Prompt = promptCount
	case stageLength:
		m.input.Prompt = promptLength
	case stageCode:
		m.input.Prompt = promptCode
	default:
		m.countInput = ""
		m.input.Prompt = promptChoice
	}

	return m.input.Focus()
}

func (m menuModel) exit() (tea.Model, tea.Cmd) {
	m.exiting = true
	m.input.Blur()
	return m, tea.Quit
}

func (m *menuModel) copyLastResult() {
	if strings.TrimSpace(m.lastResult) == "" {
		m.status = app.MsgNothingToCopy
		return
	}
	if err := m.copyToClipboard(m.lastResult); err != nil {
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = app.MsgCopied
}

func (m menuModel) View() string {
	if m.exiting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuText)
	b.WriteString("\n")

	if strings.TrimSpace(m.lastResult) != "" {
		b.WriteString("\n")
		b.WriteString(lastResultHeader)
		b.WriteString("\n")
		b.WriteString(m.lastResult)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.stage == stageBusy {
		b.WriteString(m.spinner.View())
		b.WriteString(" Calling ")
		b.WriteString(m.busyLabel)
		b.WriteString("...")
	} else {
		b.WriteString(m.input.View())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage(m.header(), b.String(), m.hotKeys(), renderBuildInfo(m.buildInfo))
}

func (m menuModel) header() string {
	state := connectionStyle(m.connState).Render("● " + m.connState.String())
	return titleStyle.Render("DISCOUNT HUB") + "  " + state
}

func (m menuModel) hotKeys() string {
	switch m.stage {
	case stageBusy:
		return "ctrl+c: exit"
	case stageChoice:
		return "enter: submit · ctrl+y: copy result · ctrl+c: exit"
	default:
		return "enter: submit · esc: back · ctrl+y: copy result · ctrl+c: exit"
	}
}
