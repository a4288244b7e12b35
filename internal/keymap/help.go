package keymap

import "github.com/charmbracelet/bubbles/key"

// Help adapts a set of bindings to the bubbles help.KeyMap interface.
type Help struct {
	Short []key.Binding
	Full  [][]key.Binding
}

// HelpFor builds help for the global bindings plus one context.
func HelpFor(context string) Help {
	global := HelpKeys(ByContext(GlobalContext))
	local := HelpKeys(ByContext(context))
	short := local
	if len(short) > 6 {
		short = short[:6]
	}
	return Help{
		Short: append(short, global...),
		Full:  [][]key.Binding{local, global},
	}
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding { return h.Short }

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding { return h.Full }
