package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen/quoteboard/internal/app"
)

// Run starts the terminal UI and blocks until the user quits or ctx ends.
// Board changes made outside the update loop, such as the loading flag
// flipping during a fetch, are forwarded to the program as they happen.
func Run(ctx context.Context, board *app.Board, opts Options, programOpts ...tea.ProgramOption) error {
	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, programOpts...)

	p := tea.NewProgram(NewModel(ctx, board, opts), programOpts...)

	unsubscribe := board.Subscribe(func(s app.BoardState) {
		p.Send(stateMsg(s))
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}

	return nil
}
