package config

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// InvokePath é a rota da API Invoke do Lambda.
const InvokePath = "/2015-03-31/functions/{name}/invocations"

// ServerConfig para cada servidor/porta
type ServerConfig struct {
	Port      int              `json:"port"`
	Functions []FunctionConfig `json:"functions"`
}

// Router monta o roteador com a rota de invocação.
func (s *ServerConfig) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc(InvokePath, s.NewInvokeHandler()).Methods(http.MethodPost)
	return router
}

func (s *ServerConfig) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	log.Info().Int("port", s.Port).Int("functions", len(s.Functions)).Msg("Iniciando emulador Lambda")
	if err := http.ListenAndServe(addr, s.Router()); err != nil {
		log.Error().Err(err).Int("port", s.Port).Msg("Erro no servidor")
	}
}
