// Package ui hosts the interactive terminal browser behind "crier browse".
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"crier/internal/msg"
	"crier/internal/msgfmt"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("6")).Underline(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// BrowserModel is a Bubble Tea model that pages through the rendered form of
// each sink channel, in either output mode.
type BrowserModel struct {
	sink    *msg.Sink
	opts    msgfmt.Options
	channel int
	mode    msg.Mode
	vp      viewport.Model
	width   int
	ready   bool
	renderE error
}

// NewBrowserModel returns a browser over the given sink. opts is reused for
// every render, so a catalog resolver set there applies to all channels.
func NewBrowserModel(s *msg.Sink, opts msgfmt.Options) *BrowserModel {
	return &BrowserModel{sink: s, opts: opts, mode: msg.ModeText}
}

func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

func (m *BrowserModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		headerHeight := 2
		if !m.ready {
			m.vp = viewport.New(message.Width, message.Height-headerHeight)
			m.ready = true
		} else {
			m.vp.Width = message.Width
			m.vp.Height = message.Height - headerHeight
		}
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch message.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.channel = (m.channel + 1) % len(msg.AllChannels)
			m.refresh()
			return m, nil
		case "shift+tab", "left", "h":
			m.channel = (m.channel + len(msg.AllChannels) - 1) % len(msg.AllChannels)
			m.refresh()
			return m, nil
		case "m":
			if m.mode == msg.ModeText {
				m.mode = msg.ModeHTML
			} else {
				m.mode = msg.ModeText
			}
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(message)
	return m, cmd
}

// refresh re-renders the active channel into the viewport.
func (m *BrowserModel) refresh() {
	if !m.ready {
		return
	}
	ch := msg.AllChannels[m.channel]
	var b strings.Builder
	var err error
	if m.mode == msg.ModeHTML {
		err = msgfmt.RenderHTML(&b, m.sink, ch, m.opts)
	} else {
		err = msgfmt.RenderText(&b, m.sink, ch, m.opts)
	}
	m.renderE = err
	content := b.String()
	if content == "" && err == nil {
		content = statusStyle.Render(fmt.Sprintf("(no %s)", ch))
	}
	m.vp.SetContent(content)
	m.vp.GotoTop()
}

func (m *BrowserModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var tabs []string
	for i, ch := range msg.AllChannels {
		label := fmt.Sprintf("%s (%d)", ch, m.sink.Len(ch))
		if i == m.channel {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	status := fmt.Sprintf("mode: %s • tab: channel • m: mode • q: quit", m.mode)
	if m.renderE != nil {
		status = errStyle.Render("render failed: " + m.renderE.Error())
	}
	status = runewidth.Truncate(status, max(m.width, 1), "…")

	return header + "\n" + statusStyle.Render(status) + "\n" + m.vp.View()
}
