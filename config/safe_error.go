package config

// SafeErrorMessage em modo release devolve apenas a mensagem genérica,
// sem expor detalhes internos do erro ao cliente.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
