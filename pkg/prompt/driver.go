// Package prompt hosts the engine in a terminal: a Session walks the leaves
// of a form model, prompts for values, feeds touch/dirty transitions and
// validator findings through the same derived views a browser host would
// read, and echoes findings according to the resolved display strategy.
package prompt

import "context"

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// Driver abstracts the terminal implementation so session logic can be
// tested without a real terminal and callers can swap implementations.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Info(ctx context.Context, msg string) error
}
