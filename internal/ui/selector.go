package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

const (
	listHeight       = 8
	detailLabelWidth = 16
	minWidth         = 60
	maxWidth         = 120
	// Fixed column widths
	colWidthID    = 24
	colWidthState = 14
)

// ErrSelectionCancelled is returned when the user leaves the selector without picking an item.
var ErrSelectionCancelled = errors.New("selection cancelled")

// Detail is one labelled line of the details panel.
type Detail struct {
	Label string
	Value string
}

// Item is one selectable row.
type Item struct {
	ID      string
	Name    string
	State   string
	Details []Detail
}

// Model represents the bubbletea model for item selection
type Model struct {
	title        string
	items        []Item
	filtered     []Item
	cursor       int
	offset       int // for scrolling
	search       string
	selected     *Item
	quitting     bool
	cancelled    bool
	termWidth    int
	contentWidth int   // width inside the box (excluding borders)
	colWidths    []int // [ID, State, Name]
}

// NewModel creates a new selector model
func NewModel(title string, items []Item) Model {
	m := Model{
		title:     title,
		items:     items,
		filtered:  items,
		termWidth: 80, // default
	}
	m.calculateWidths()
	return m
}

// calculateWidths computes responsive column widths based on terminal size
func (m *Model) calculateWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < minWidth {
		m.contentWidth = minWidth
	}
	if m.contentWidth > maxWidth {
		m.contentWidth = maxWidth
	}

	// cursor(3) + ID + spacing(2) + State + spacing(2) + Name
	fixedWidth := 3 + colWidthID + 2 + colWidthState + 2
	nameWidth := m.contentWidth - fixedWidth
	if nameWidth < 10 {
		nameWidth = 10
	}

	m.colWidths = []int{colWidthID, colWidthState, nameWidth}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = &m.filtered[m.cursor]
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+listHeight {
					m.offset = m.cursor - listHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterItems()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterItems()
		}
	}

	return m, nil
}

// filterItems filters the items based on search query
func (m *Model) filterItems() {
	if m.search == "" {
		m.filtered = m.items
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, item := range m.items {
			if strings.Contains(strings.ToLower(item.ID), query) ||
				strings.Contains(strings.ToLower(item.Name), query) ||
				strings.Contains(strings.ToLower(item.State), query) {
				m.filtered = append(m.filtered, item)
			}
		}
	}
	// Reset cursor if out of bounds
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Search input
	sb.WriteString(m.boxLine(NameStyle.Render(padRight(" > "+m.search, w))))
	sb.WriteString(m.blankLine())

	visibleEnd := m.offset + listHeight
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}
	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderRow(i))
	}

	// Fill remaining lines if list is short
	for i := len(m.filtered); i < m.offset+listHeight; i++ {
		sb.WriteString(m.blankLine())
	}
	sb.WriteString(m.blankLine())

	// Separator
	sb.WriteString(BorderStyle.Render(LeftT))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	sb.WriteString(m.renderDetailsPanel())

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m Model) boxLine(content string) string {
	return BorderStyle.Render(Vertical) + content + BorderStyle.Render(Vertical) + "\n"
}

func (m Model) blankLine() string {
	return m.boxLine(strings.Repeat(" ", m.contentWidth))
}

func (m Model) renderRow(idx int) string {
	item := m.filtered[idx]

	var line strings.Builder
	plainWidth := 0

	// Cursor indicator (3 chars)
	if idx == m.cursor {
		line.WriteString(" > ")
	} else {
		line.WriteString("   ")
	}
	plainWidth += 3

	line.WriteString(IDStyle.Render(padRight(item.ID, m.colWidths[0])))
	line.WriteString("  ")
	plainWidth += m.colWidths[0] + 2

	indicator, style := stateIndicator(item.State)
	if item.State == "" {
		indicator = " "
	}
	line.WriteString(style.Render(padRight(indicator+" "+item.State, m.colWidths[1])))
	line.WriteString("  ")
	plainWidth += m.colWidths[1] + 2

	line.WriteString(NameStyle.Render(padRight(item.Name, m.colWidths[2])))
	plainWidth += m.colWidths[2]

	if plainWidth < m.contentWidth {
		line.WriteString(strings.Repeat(" ", m.contentWidth-plainWidth))
	}

	return m.boxLine(line.String())
}

func (m Model) renderDetailsPanel() string {
	var sb strings.Builder
	w := m.contentWidth

	sb.WriteString(m.boxLine(HeaderStyle.Render(padRight(" "+m.title, w))))
	sb.WriteString(m.boxLine(MutedStyle.Render(padRight(" "+strings.Repeat("─", 20), w))))

	if len(m.filtered) == 0 {
		sb.WriteString(m.boxLine(MutedStyle.Render(padRight(" No matches", w))))
	} else {
		item := m.filtered[m.cursor]
		maxValueWidth := w - 1 - detailLabelWidth

		for _, d := range item.Details {
			value := formatOptional(d.Value)
			if runewidth.StringWidth(value) > maxValueWidth {
				value = runewidth.Truncate(value, maxValueWidth, "...")
			}
			plainWidth := 1 + detailLabelWidth + runewidth.StringWidth(value)

			line := MutedStyle.Render(" "+padRight(d.Label+":", detailLabelWidth)) + ValueStyle.Render(value)
			if plainWidth < w {
				line += strings.Repeat(" ", w-plainWidth)
			}
			sb.WriteString(m.boxLine(line))
		}
	}

	sb.WriteString(m.blankLine())
	return sb.String()
}

func (m Model) renderStatusBar() string {
	w := m.contentWidth + 2

	countInfo := fmt.Sprintf("  %d/%d", len(m.filtered), len(m.items))
	hintsPlain := "[Enter:select] [Esc:cancel]"

	padding := w - runewidth.StringWidth(countInfo) - runewidth.StringWidth(hintsPlain)

	var sb strings.Builder
	sb.WriteString(countInfo)
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(HintStyle.Render(hintsPlain))
	sb.WriteString("\n")
	return sb.String()
}

// Selected returns the chosen item, or nil when the selector was cancelled.
func (m Model) Selected() *Item {
	if m.cancelled {
		return nil
	}
	return m.selected
}

// Select displays an interactive selector and returns the chosen item.
func Select(title string, items []Item) (*Item, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("nothing to select")
	}

	p := tea.NewProgram(NewModel(title, items))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running selector: %w", err)
	}

	selected := finalModel.(Model).Selected()
	if selected == nil {
		return nil, ErrSelectionCancelled
	}
	return selected, nil
}
