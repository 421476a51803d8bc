package tui

import (
	"github.com/rvillegas/finpulse/internal/config"
)

// DatasetLoadedMsg carries a successfully loaded dataset.
type DatasetLoadedMsg struct {
	Dataset *config.Dataset
}

// ErrorMsg carries a load or evaluation failure.
type ErrorMsg struct {
	Err error
}
