package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runewire/runewire/codec"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inputMode int

const (
	modeCodepoint inputMode = iota
	modeUTF8
	modeUTF16
	modeCount
)

func (m inputMode) String() string {
	switch m {
	case modeCodepoint:
		return "codepoint"
	case modeUTF8:
		return "utf-8 bytes"
	case modeUTF16:
		return "utf-16 units"
	default:
		return "unknown"
	}
}

func (m inputMode) placeholder() string {
	switch m {
	case modeCodepoint:
		return "U+1F600"
	case modeUTF8:
		return "F0 9F 98 80"
	default:
		return "D83D DE00"
	}
}

// traceStep is one fed input unit and the engine state it produced.
type traceStep struct {
	input string
	res   codec.Result
}

type inspectorModel struct {
	input      textinput.Model
	mode       inputMode
	rangeCheck bool
	trace      []traceStep
	final      *codec.Result
	parseErr   error
}

func newInspectorModel(rangeCheck bool) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = modeCodepoint.placeholder()
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()
	return &inspectorModel{input: ti, rangeCheck: rangeCheck}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab":
			m.mode = (m.mode + 1) % modeCount
			m.input.Placeholder = m.mode.placeholder()
			m.clearResult()
			return m, nil

		case "esc":
			if m.trace != nil || m.parseErr != nil {
				m.clearResult()
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			m.inspect()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) clearResult() {
	m.trace = nil
	m.final = nil
	m.parseErr = nil
}

func (m *inspectorModel) inspect() {
	m.clearResult()
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}

	switch m.mode {
	case modeCodepoint:
		cp, err := parseCodepoint(text)
		if err != nil {
			m.parseErr = err
			return
		}
		res := codec.Result{Value: cp, Status: codec.Ready, Props: cp.Properties()}
		m.final = &res

	case modeUTF8:
		dec := codec.NewUTF8Decoder(m.rangeCheck)
		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseUint(field, 16, 8)
			if err != nil {
				m.parseErr = fmt.Errorf("parse byte %q: %w", field, err)
				return
			}
			res := dec.Feed(byte(v))
			m.trace = append(m.trace, traceStep{input: fmt.Sprintf("%02X", v), res: res})
		}
		res := dec.Result()
		m.final = &res

	case modeUTF16:
		dec := codec.NewUTF16Decoder()
		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseUint(field, 16, 16)
			if err != nil {
				m.parseErr = fmt.Errorf("parse unit %q: %w", field, err)
				return
			}
			res, _ := dec.Feed(uint16(v))
			m.trace = append(m.trace, traceStep{input: fmt.Sprintf("%04X", v), res: res})
		}
		res := dec.Result()
		m.final = &res
	}
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("runewire inspector"))
	b.WriteString("  mode: ")
	b.WriteString(modeStyle.Render(m.mode.String()))
	if !m.rangeCheck {
		b.WriteString("  (relaxed)")
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.parseErr != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.parseErr)))
		b.WriteString("\n\n")
	}

	for _, step := range m.trace {
		line := fmt.Sprintf("  %-5s -> %s", step.input, step.res.Status)
		if step.res.Status&codec.Error != 0 {
			b.WriteString(errStyle.Render(line))
		} else if step.res.Status&codec.Ready != 0 {
			b.WriteString(okStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	if len(m.trace) > 0 {
		b.WriteString("\n")
	}

	if m.final != nil && m.final.Status&codec.Ready != 0 {
		b.WriteString(m.renderScalar(m.final.Value))
	}

	b.WriteString(helpStyle.Render("tab mode • enter inspect • esc clear • ctrl+c quit"))
	return b.String()
}

func (m *inspectorModel) renderScalar(cp codec.Codepoint) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  Codepoint:  %s\n", valueStyle.Render(fmt.Sprintf("U+%04X", uint32(cp))))
	fmt.Fprintf(&b, "  Properties: %s\n", cp.Properties())

	if enc, res := codec.AppendUTF8(nil, cp, m.rangeCheck); res.Status&codec.Error == 0 {
		fmt.Fprintf(&b, "  UTF-8:      %s\n", valueStyle.Render(fmt.Sprintf("% X", enc)))
	}
	if units, res := codec.AppendUTF16(nil, cp); res.Status&codec.Error == 0 {
		parts := make([]string, len(units))
		for i, u := range units {
			parts[i] = fmt.Sprintf("%04X", u)
		}
		fmt.Fprintf(&b, "  UTF-16:     %s\n", valueStyle.Render(strings.Join(parts, " ")))
	}
	b.WriteString("\n")
	return b.String()
}

func runInteractive(rangeCheck bool) error {
	p := tea.NewProgram(newInspectorModel(rangeCheck), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
