package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/witrix-cli/internal/adapters/prompt"
	"github.com/bnema/witrix-cli/internal/adapters/render/toast"
)

func (a *app) notify(message string) {
	if a.notifications == nil {
		return
	}
	a.notifications.Post(message, a.toasts.Duration)
}

// flushToasts shows pending notifications: animated on a terminal until
// they expire, as plain lines otherwise.
func (a *app) flushToasts(cmd *cobra.Command) error {
	if a.notifications == nil {
		return nil
	}
	defer a.notifications.Close()

	active := a.notifications.Active()
	if len(active) == 0 {
		return nil
	}

	out := cmd.ErrOrStderr()
	if a.toasts.Enabled && prompt.IsTerminal(out) {
		return toast.Run(cmd.Context(), out, a.notifications, toast.Options{})
	}

	for _, item := range active {
		if _, err := fmt.Fprintln(out, item.Message); err != nil {
			return err
		}
	}

	return nil
}
