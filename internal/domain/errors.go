package domain

import "fmt"

// InvalidPeriodError indica argumentos de período inválidos. É um erro do
// chamador e nunca deve ser retentado.
type InvalidPeriodError struct {
	Reason string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period: %s", e.Reason)
}

// ProviderError indica falha na API do provedor de anúncios. O resultado
// nunca é cacheado; a próxima execução do tick tenta novamente.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("provider error on %s", e.Op)
	}
	return fmt.Sprintf("provider error on %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// StorageError indica indisponibilidade do armazenamento chave-valor ou de
// documentos. A operação é abortada apenas para o projeto afetado.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage error on %s", e.Op)
	}
	return fmt.Sprintf("storage error on %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
