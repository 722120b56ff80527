package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Select   key.Binding
	Back     key.Binding
	Skip     key.Binding
	Previous key.Binding
	Pause    key.Binding
	End      key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Skip:     key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "skip")),
		Previous: key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "previous")),
		Pause:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		End:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end workout")),
		Confirm:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		Cancel:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// helpKeys is the help.KeyMap for one screen.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) forScreen(s screen, confirming bool) helpKeys {
	switch s {
	case screenOverview:
		return helpKeys{withHelp(k.Select, "start"), k.Back, k.Quit}
	case screenRun:
		if confirming {
			return helpKeys{k.Confirm, k.Cancel}
		}
		return helpKeys{k.Skip, k.Previous, k.Pause, k.End, k.Quit}
	case screenFinished:
		return helpKeys{withHelp(k.Select, "back to list"), k.Quit}
	default:
		return helpKeys{k.Select, k.Quit}
	}
}

func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
