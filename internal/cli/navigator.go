package cli

import (
	"fmt"
	"io"
	"sync"
)

// Navigator tracks which command is running so the transport can tell
// whether a 401 happened on the sign-in flow itself.
type Navigator struct {
	mu      sync.Mutex
	current string
	out     io.Writer
	hinted  bool
}

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

func (n *Navigator) Enter(view string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = view
	n.hinted = false
}

func (n *Navigator) OnEntryView() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return isEntryView(n.current)
}

// RedirectToLogin prints the sign-in hint once per command.
func (n *Navigator) RedirectToLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.hinted {
		return
	}
	n.hinted = true
	_, _ = fmt.Fprintln(n.out, "Session expired or invalid. Sign in again with: sevactl login --email <email> --password <password>")
}

func isEntryView(view string) bool {
	return view == "login" || view == "verify"
}
