// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-discount-client/internal/app"
	"github.com/MKhiriev/go-discount-client/internal/logger"
	"github.com/MKhiriev/go-discount-client/internal/service"
	"github.com/MKhiriev/go-discount-client/models"
)

// stubDiscountService records every handler call and answers with fixed
// texts.
type stubDiscountService struct {
	mu    sync.Mutex
	calls [][]string
}

func (s *stubDiscountService) record(call ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *stubDiscountService) recorded() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string(nil), s.calls...)
}

func (s *stubDiscountService) Ping(context.Context) string {
	s.record("Ping")
	return "Ping Response: Pong"
}

func (s *stubDiscountService) GenerateCodes(_ context.Context, count, length string) string {
	s.record("GenerateCodes", count, length)
	return app.MsgCodesGenerated
}

func (s *stubDiscountService) UseCode(_ context.Context, code string) string {
	s.record("UseCode", code)
	return app.MsgCodeUsed
}

func (s *stubDiscountService) GetUsedCodes(context.Context) string {
	s.record("GetUsedCodes")
	return app.MsgNoUsedCodes
}

func (s *stubDiscountService) GetUnusedCodes(context.Context) string {
	s.record("GetUnusedCodes")
	return "Unused Codes:\n- Code: QWE7890, DiscountPercentage: 15% , CreatedAt: 2024-05-06"
}

type stubAppInfo struct{}

func (stubAppInfo) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo("v1.0.0", "2026-01-01", "deadbeef")
}

func newTestMenu(t *testing.T) (menuModel, *stubDiscountService) {
	t.Helper()
	svc := &stubDiscountService{}
	services := &service.ClientServices{DiscountService: svc, AppInfoService: stubAppInfo{}}
	return newMenuModel(context.Background(), services, nil), svc
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m menuModel, msg tea.Msg) (menuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(menuModel)
	require.True(t, ok)
	return nm, cmd
}

// enter types text into the current prompt and submits it.
func enter(t *testing.T, m menuModel, text string) (menuModel, tea.Cmd) {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, keyRunes(string(r)))
	}
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// drain runs cmd, expanding batches, and returns every produced message.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// complete runs the in-flight call and feeds its result back into the model.
func complete(t *testing.T, m menuModel, cmd tea.Cmd) menuModel {
	t.Helper()
	require.Equal(t, stageBusy, m.stage)
	for _, msg := range drain(cmd) {
		if res, ok := msg.(resultMsg); ok {
			m, _ = send(t, m, res)
			return m
		}
	}
	t.Fatal("command produced no result")
	return m
}

func isQuit(cmd tea.Cmd) bool {
	for _, msg := range drain(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

// ── View ─────────────────────────────────────────────────────────────────────

func TestMenu_InitialView(t *testing.T) {
	m, _ := newTestMenu(t)

	view := m.View()

	for _, line := range []string{
		"Choose an action:",
		"1 - Call Ping",
		"2 - Call GenerateCodes (Enter Count & Length)",
		"3 - Call UseCode (Enter Code)",
		"4 - Call GetUsedCodes",
		"5 - Call GetUnusedCodes",
		"0 - Exit",
		"Enter your choice: ",
		"connected",
		"v1.0.0",
		"deadbeef",
	} {
		assert.Contains(t, view, line)
	}
	assert.NotContains(t, view, "Last Result:")
}

// ── Choices ──────────────────────────────────────────────────────────────────

func TestMenu_InvalidChoice(t *testing.T) {
	for _, input := range []string{"9", "", " 1", "1 ", "ping"} {
		t.Run(input, func(t *testing.T) {
			m, svc := newTestMenu(t)

			m, cmd := enter(t, m, input)

			assert.Nil(t, cmd)
			assert.Equal(t, stageChoice, m.stage)
			assert.Equal(t, app.MsgInvalidChoice, m.lastResult)
			assert.Empty(t, svc.recorded())

			view := m.View()
			assert.Contains(t, view, "Last Result:")
			assert.Contains(t, view, app.MsgInvalidChoice)
		})
	}
}

func TestMenu_SimpleCommands(t *testing.T) {
	tests := []struct {
		choice string
		call   string
		want   string
	}{
		{"1", "Ping", "Ping Response: Pong"},
		{"4", "GetUsedCodes", app.MsgNoUsedCodes},
		{"5", "GetUnusedCodes", "Unused Codes:\n- Code: QWE7890, DiscountPercentage: 15% , CreatedAt: 2024-05-06"},
	}

	for _, tt := range tests {
		t.Run(tt.call, func(t *testing.T) {
			m, svc := newTestMenu(t)

			m, cmd := enter(t, m, tt.choice)
			assert.Contains(t, m.View(), "Calling "+tt.call)
			m = complete(t, m, cmd)

			assert.Equal(t, stageChoice, m.stage)
			assert.Equal(t, tt.want, m.lastResult)
			assert.Equal(t, [][]string{{tt.call}}, svc.recorded())
			assert.Contains(t, m.View(), "Enter your choice: ")
		})
	}
}

func TestMenu_GenerateCodesFlow(t *testing.T) {
	m, svc := newTestMenu(t)

	m, _ = enter(t, m, "2")
	require.Equal(t, stageCount, m.stage)
	assert.Contains(t, m.View(), "Enter Count: ")

	m, _ = enter(t, m, " 5 ")
	require.Equal(t, stageLength, m.stage)
	assert.Contains(t, m.View(), "Enter Length (7 or 8): ")

	m, cmd := enter(t, m, "8")
	m = complete(t, m, cmd)

	assert.Equal(t, app.MsgCodesGenerated, m.lastResult)
	assert.Equal(t, [][]string{{"GenerateCodes", " 5 ", "8"}}, svc.recorded())
}

func TestMenu_UseCodeFlow(t *testing.T) {
	m, svc := newTestMenu(t)

	m, _ = enter(t, m, "3")
	require.Equal(t, stageCode, m.stage)
	assert.Contains(t, m.View(), "Enter Code (7 or 8 characters): ")

	m, cmd := enter(t, m, "ABC1234")
	m = complete(t, m, cmd)

	assert.Equal(t, app.MsgCodeUsed, m.lastResult)
	assert.Equal(t, [][]string{{"UseCode", "ABC1234"}}, svc.recorded())
}

func TestMenu_EscReturnsToMenu(t *testing.T) {
	m, svc := newTestMenu(t)

	m, _ = enter(t, m, "2")
	m, _ = enter(t, m, "10")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Equal(t, stageChoice, m.stage)
	assert.Empty(t, m.countInput)
	assert.Empty(t, m.input.Value())
	assert.Empty(t, svc.recorded())
}

// ── Exit ─────────────────────────────────────────────────────────────────────

func TestMenu_ExitChoice(t *testing.T) {
	m, svc := newTestMenu(t)

	m, cmd := enter(t, m, "0")

	assert.True(t, isQuit(cmd))
	assert.True(t, m.exiting)
	assert.Empty(t, m.View())
	assert.Empty(t, svc.recorded())
}

func TestMenu_CtrlCExits(t *testing.T) {
	m, _ := newTestMenu(t)
	m, _ = enter(t, m, "3")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(cmd))
	assert.True(t, m.exiting)
}

func TestMenu_CtrlCExitsWhileBusy(t *testing.T) {
	m, _ := newTestMenu(t)
	m, _ = enter(t, m, "1")
	require.Equal(t, stageBusy, m.stage)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(cmd))
}

func TestMenu_BusyIgnoresInput(t *testing.T) {
	m, svc := newTestMenu(t)
	m, _ = enter(t, m, "1")

	m, cmd := enter(t, m, "4")

	assert.Nil(t, cmd)
	assert.Equal(t, stageBusy, m.stage)
	assert.Empty(t, m.input.Value())
	assert.Empty(t, svc.recorded(), "the in-flight call has not been run yet")
}

// ── Clipboard ────────────────────────────────────────────────────────────────

func TestMenu_CopyLastResult(t *testing.T) {
	m, _ := newTestMenu(t)
	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m, _ = enter(t, m, "9")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Equal(t, app.MsgInvalidChoice, copied)
	assert.Equal(t, app.MsgCopied, m.status)
	assert.Contains(t, m.View(), app.MsgCopied)
}

func TestMenu_CopyNothing(t *testing.T) {
	m, _ := newTestMenu(t)
	m.copyToClipboard = func(string) error {
		t.Fatal("clipboard must not be touched")
		return nil
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Equal(t, app.MsgNothingToCopy, m.status)
}

func TestMenu_CopyFailure(t *testing.T) {
	m, _ := newTestMenu(t)
	m.copyToClipboard = func(string) error { return errors.New("no clipboard utility") }

	m, _ = enter(t, m, "9")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Equal(t, "Copy failed: no clipboard utility", m.status)
}

// ── Connection state ─────────────────────────────────────────────────────────

func TestMenu_ConnectionState(t *testing.T) {
	states := make(chan models.ConnectionState, 2)
	states <- models.ConnectionReconnecting
	states <- models.ConnectionConnected

	svc := &stubDiscountService{}
	m := newMenuModel(context.Background(), &service.ClientServices{DiscountService: svc}, states)

	msg := waitForState(m.states)()
	m, next := send(t, m, msg)
	assert.Equal(t, models.ConnectionReconnecting, m.connState)
	assert.Contains(t, m.View(), "reconnecting")
	require.NotNil(t, next)

	m, _ = send(t, m, next())
	assert.Equal(t, models.ConnectionConnected, m.connState)
}

func TestWaitForState(t *testing.T) {
	assert.Nil(t, waitForState(nil))

	closed := make(chan models.ConnectionState)
	close(closed)
	assert.Equal(t, stateStreamClosedMsg{}, waitForState(closed)())
}

func TestMenu_BuildInfoWithoutService(t *testing.T) {
	m := newMenuModel(context.Background(), &service.ClientServices{DiscountService: &stubDiscountService{}}, nil)

	assert.Contains(t, m.View(), "version N/A")
}

// ── New ──────────────────────────────────────────────────────────────────────

func TestNew_RequiresDiscountService(t *testing.T) {
	_, err := New(&service.ClientServices{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = New(nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	ui, err := New(&service.ClientServices{DiscountService: &stubDiscountService{}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, ui)
}
