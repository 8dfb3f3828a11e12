package main

import (
	"os"

	"minimax/internal/cmd"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("minimax failed")
	}
}

func run() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
