package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateList state = iota
	stateReport
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498db"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e056fd"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c")).Bold(true)
)

type model struct {
	state      state
	client     *apiClient
	interviews []interviewBrief
	cursor     int
	detail     *interviewDetail
	scroll     int
	err        error
}

func initialModel(client *apiClient, interviews []interviewBrief) model {
	return model{
		state:      stateList,
		client:     client,
		interviews: interviews,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type detailLoadedMsg struct {
	detail *interviewDetail
	err    error
}

func (m model) loadDetail(uuid string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.client.getInterview(uuid)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		m.err = msg.err
		m.detail = msg.detail
		m.scroll = 0
		if msg.err == nil {
			m.state = stateReport
		}
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case stateList:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.interviews)-1 {
					m.cursor++
				}
			case "enter":
				if len(m.interviews) > 0 {
					return m, m.loadDetail(m.interviews[m.cursor].UUID)
				}
			}
		case stateReport:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "b":
				m.state = stateList
				return m, nil
			case "up", "k":
				if m.scroll > 0 {
					m.scroll--
				}
			case "down", "j":
				m.scroll++
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateReport:
		return m.reportView()
	default:
		return m.listView()
	}
}

func (m model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sortify interviews") + "\n\n")

	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n")
	}
	if len(m.interviews) == 0 {
		b.WriteString("No interviews found.\n")
	}

	for i, interv := range m.interviews {
		line := fmt.Sprintf("%-38s %-24s %-10s %s", interv.UUID, interv.Role, interv.Mode, statusLabel(interv))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\nUse arrows to move, enter to open a report, q to quit.\n")
	return b.String()
}

func statusLabel(interv interviewBrief) string {
	switch {
	case interv.Suspended:
		return warnStyle.Render("suspended")
	case interv.Completed && interv.FinalScore != nil:
		return scoreStyle.Render(fmt.Sprintf("%.2f/10", *interv.FinalScore))
	case interv.Completed:
		return "completed"
	default:
		return "in progress"
	}
}

const reportPageSize = 30

func (m model) reportView() string {
	if m.detail == nil {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Interview for %s", m.detail.Role)) + "\n")
	if m.detail.FinalScore != nil {
		b.WriteString(scoreStyle.Render(fmt.Sprintf("Final score: %.2f/10", *m.detail.FinalScore)) + "\n")
	}
	if m.detail.Suspended {
		b.WriteString(warnStyle.Render("SUSPENDED: "+m.detail.SuspendReason) + "\n")
	}
	b.WriteString("\n")

	report := m.detail.FinalReport
	if report == "" {
		report = "No report generated yet.\n\n" + m.detail.Transcript
	}
	lines := strings.Split(report, "\n")
	start := m.scroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + reportPageSize
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[start:end], "\n"))

	b.WriteString("\n\nUse arrows to scroll, 'b' for the list, q to quit.\n")
	return b.String()
}
