package leadsync

import "errors"

var (
	// ErrLeadNotFound indica que o lead não existe no snapshot do projeto
	ErrLeadNotFound = errors.New("lead não encontrado")

	// ErrInvalidStatus indica um status de lead fora do conjunto conhecido
	ErrInvalidStatus = errors.New("status de lead inválido")
)
