package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/biglinehq/bigline/pkg/errors"
	"github.com/biglinehq/bigline/pkg/lineage"
)

var (
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	pickerSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	pickerNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	pickerDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// memberPickerModel is the bubbletea model for interactive member selection
// with filter-as-you-type matching on names and nicknames.
type memberPickerModel struct {
	prompt   string
	members  []*lineage.Member
	filter   string
	matches  []*lineage.Member
	cursor   int
	offset   int
	height   int
	selected string
	aborted  bool
}

func newMemberPicker(g *lineage.Graph, prompt string) memberPickerModel {
	m := memberPickerModel{
		prompt:  prompt,
		members: g.Members(),
		height:  12,
	}
	m.refilter()
	return m
}

func (m memberPickerModel) Init() tea.Cmd {
	return nil
}

func (m memberPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case "enter":
		if m.cursor < len(m.matches) {
			m.selected = m.matches[m.cursor].Name
			return m, tea.Quit
		}
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.refilter()
		}
	default:
		if key.Type == tea.KeyRunes {
			m.filter += string(key.Runes)
			m.refilter()
		}
	}

	return m, nil
}

// refilter recomputes the match list for the current filter text and
// clamps the cursor back into range.
func (m *memberPickerModel) refilter() {
	q := strings.ToLower(m.filter)
	m.matches = m.matches[:0]
	for _, mem := range m.members {
		if q == "" ||
			strings.Contains(strings.ToLower(mem.Name), q) ||
			strings.Contains(strings.ToLower(mem.Nickname), q) {
			m.matches = append(m.matches, mem)
		}
	}
	if m.cursor >= len(m.matches) {
		m.cursor = max(0, len(m.matches)-1)
	}
	m.offset = 0
}

func (m memberPickerModel) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render(m.prompt))
	b.WriteString(pickerDimStyle.Render(fmt.Sprintf("  (%d/%d)", len(m.matches), len(m.members))))
	b.WriteString("\n")
	b.WriteString(pickerDimStyle.Render("filter: ") + m.filter + "\n\n")

	end := min(m.offset+m.height, len(m.matches))
	for i := m.offset; i < end; i++ {
		line := memberSummary(m.matches[i])
		if i == m.cursor {
			b.WriteString(pickerSelectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(pickerNormalStyle.Render("  "+line) + "\n")
		}
	}
	if len(m.matches) == 0 {
		b.WriteString(pickerDimStyle.Render("  no matches") + "\n")
	}

	b.WriteString("\n" + pickerDimStyle.Render("type to filter · ↑/↓ move · enter select · esc cancel"))
	return b.String()
}

// pickMember runs the interactive picker and returns the chosen member name.
func pickMember(g *lineage.Graph, prompt string) (string, error) {
	model, err := tea.NewProgram(newMemberPicker(g, prompt)).Run()
	if err != nil {
		return "", fmt.Errorf("member picker: %w", err)
	}
	final := model.(memberPickerModel)
	if final.aborted || final.selected == "" {
		return "", errors.New(errors.ErrCodeMemberNotFound, "no member selected")
	}
	return final.selected, nil
}
