package cmd

import (
	"io"

	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/config"
	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	Out       io.Writer
	Err       io.Writer
	UI        *ui.UI
	Config    config.Config
	ConfigDir string
	Logger    zerolog.Logger
	Verbose   bool
	Version   string
	ColorMode ui.ColorMode
}
