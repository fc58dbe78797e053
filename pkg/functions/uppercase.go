package functions

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog/log"
)

// Uppercase devolve a entrada em maiúsculas.
// É a função usada pelo cmd/echofn e pelo handler "uppercase" do emulador.
func Uppercase(ctx context.Context, input string) (string, error) {
	logger := log.Ctx(ctx)
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		sub := logger.With().Str("request_id", lc.AwsRequestID).Logger()
		logger = &sub
	}
	logger.Debug().Int("length", len(input)).Msg("uppercase")

	return strings.ToUpper(input), nil
}
