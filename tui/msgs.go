package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives the clock pane and, while the timer runs, the countdown.
// A single steady ticker is rescheduled from Update on every receipt.
type tickMsg time.Time

// backgroundMsg carries the daily background URL, or "" on failure.
type backgroundMsg struct {
	url string
}

// assistantReplyMsg signals that a chat round-trip finished. The session
// already holds the transcript; err surfaces credential and transport
// failures on the status line.
type assistantReplyMsg struct {
	err error
}

// speechTextMsg carries a final recognition transcript into the chat input.
type speechTextMsg struct {
	text string
}

// speechErrMsg surfaces a recognition failure.
type speechErrMsg struct {
	err error
}

// storeChangedMsg reports an external edit of one persisted key.
type storeChangedMsg struct {
	key string
}

// statusExpireMsg clears the status line when its generation still matches.
type statusExpireMsg struct {
	gen int
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) fetchBackgroundCmd() tea.Cmd {
	fetcher := m.fetcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return backgroundMsg{url: fetcher.Fetch(ctx)}
	}
}

func (m *Model) sendChatCmd(text string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		return assistantReplyMsg{err: session.Send(ctx, text)}
	}
}

func (m *Model) waitForStoreEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeChangedMsg{key: ev.Key}
	}
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	m.statusGen++
	gen := m.statusGen
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusExpireMsg{gen: gen}
	})
}
