package invoker

// Logger é a superfície de notificação usada pelo Client.
// O Client apenas escreve; nunca lê estado do logger.
type Logger interface {
	Info(message string)
	Warn(message string)
	Error(message string)
	Debug(message string)
}

// NopLogger descarta todas as mensagens.
type NopLogger struct{}

func (NopLogger) Info(string)  {}
func (NopLogger) Warn(string)  {}
func (NopLogger) Error(string) {}
func (NopLogger) Debug(string) {}
