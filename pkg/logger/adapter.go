package logger

import "github.com/rs/zerolog"

// ZerologAdapter expõe um zerolog.Logger com os quatro níveis usados pelo
// cliente Lambda (Info, Warn, Error, Debug).
type ZerologAdapter struct {
	log zerolog.Logger
}

func NewZerologAdapter(l zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{
		log: l.With().Str("component", "lambda_client").Logger(),
	}
}

func (a *ZerologAdapter) Info(message string)  { a.log.Info().Msg(message) }
func (a *ZerologAdapter) Warn(message string)  { a.log.Warn().Msg(message) }
func (a *ZerologAdapter) Error(message string) { a.log.Error().Msg(message) }
func (a *ZerologAdapter) Debug(message string) { a.log.Debug().Msg(message) }
