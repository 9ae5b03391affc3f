package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit          = "q"
	KeyQuitAlt       = "ctrl+c"
	KeyRefresh       = "r"
	KeySelectPrev    = "up"
	KeySelectPrevK   = "k"
	KeySelectNext    = "down"
	KeySelectNextJ   = "j"
	KeySelectFirst   = "home"
	KeySelectLast    = "end"
	KeyToggle        = "enter"
	KeyToggleSpace   = " "
	KeyNextPage      = "n"
	KeyNextPageAlt   = "right"
	KeyPrevPage      = "p"
	KeyPrevPageAlt   = "left"
	KeyPageSizeUp    = "+"
	KeyPageSizeUpAlt = "="
	KeyPageSizeDown  = "-"
	KeyClose         = "esc"
	KeyToggleHelp    = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyClose {
		m.showHelp = false
		return true, nil
	}

	items := len(m.result.Summaries())

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		return true, m.fetch()

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < items-1 {
			m.selected++
		}
		return true, nil

	case KeySelectFirst:
		m.selected = 0
		return true, nil

	case KeySelectLast:
		if items > 0 {
			m.selected = items - 1
		}
		return true, nil

	case KeyToggle, KeyToggleSpace:
		m.toggleSelected()
		return true, nil

	case KeyNextPage, KeyNextPageAlt:
		return true, m.goToPage(m.result.NextPagePagination())

	case KeyPrevPage, KeyPrevPageAlt:
		return true, m.goToPage(m.result.PrevPagePagination())

	case KeyPageSizeUp, KeyPageSizeUpAlt:
		return true, m.changePageSize(stepPageSize(m.props.PageSize, 1))

	case KeyPageSizeDown:
		return true, m.changePageSize(stepPageSize(m.props.PageSize, -1))
	}

	return false, nil
}
