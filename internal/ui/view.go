package ui

import (
	"fmt"
	"strings"
)

// fileFirstRow is the screen row of the first file entry: the header line
// plus one blank line. The menu block starts one blank line below the
// files; mouse routing in navigation.go depends on this layout.
const fileFirstRow = 2

// menuFirstNodeRow returns the screen row of the first menu node: files
// block, a blank separator and the menu title.
func (m *Model) menuFirstNodeRow() int {
	return fileFirstRow + len(m.files) + 2
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, 16)
	header := "Files"
	if styles.Title != nil {
		header = styles.Title.Render(header)
	}
	lines = append(lines, header, "")

	for i, f := range m.files {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := marker + f.Name
		if f.Protected {
			line += " (protected)"
		}
		if i == m.cursor && styles.SelectedItem != nil {
			line = styles.SelectedItem.Render(line)
		} else if styles.Item != nil {
			line = styles.Item.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "")

	if m.menuOpen() {
		lines = append(lines, m.contextMenu.View(m.menuCursor))
		if m.filtering {
			lines = append(lines, m.filterInput.View())
		}
	}

	if m.infoMsg != "" {
		lines = append(lines, "", renderInfo(m.infoMsg))
	}
	if m.errMsg != "" {
		lines = append(lines, "", renderError(m.errMsg))
	}
	if m.showFooter {
		footer := "↑/↓ move  m menu  enter activate  / filter  esc close  q quit"
		if styles.Footer != nil {
			footer = styles.Footer.Render(footer)
		}
		lines = append(lines, "", footer)
	}
	return strings.Join(lines, "\n")
}

func renderInfo(msg string) string {
	if styles.Info != nil {
		return styles.Info.Render(msg)
	}
	return msg
}

func renderError(msg string) string {
	text := fmt.Sprintf("Error: %s", msg)
	if styles.Error != nil {
		return styles.Error.Render(text)
	}
	return text
}
