package main

import (
	"flag"
	"os"
	"sync"

	"github.com/raywall/fast-lambda-client/tools/emulator/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Injetável para testes
var serverStarter = func(s *config.ServerConfig) {
	s.Start()
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	path := flag.String("config", os.Getenv("EMULATOR_CONFIG_PATH"), "Arquivo JSON com servidores e funções")
	flag.Parse()

	if err := run(*path); err != nil {
		log.Fatal().Err(err).Msg("Falha ao iniciar o emulador")
	}
}

// run sobe um servidor por porta e bloqueia até todos terminarem.
func run(configPath string) error {
	var cfg config.Config
	if configPath == "" {
		cfg = config.Load()
	} else if err := cfg.LoadFromFile(configPath); err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, server := range cfg {
		wg.Add(1)
		go func(s config.ServerConfig) {
			defer wg.Done()
			serverStarter(&s)
		}(server)
	}
	wg.Wait()
	return nil
}
