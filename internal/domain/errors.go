package domain

import (
	"errors"
	"fmt"
)

// Erros fatais de entrada: interrompem a execução antes de qualquer trabalho.
var (
	// ErrInvalidArguments indica flags de período contraditórias ou incompletas.
	ErrInvalidArguments = errors.New("argumentos de período inválidos")

	// ErrMissingCatalogData indica que --full-history foi solicitado mas não
	// foi possível derivar a data do primeiro vídeo do canal.
	ErrMissingCatalogData = errors.New("não foi possível determinar a data do primeiro vídeo do canal")

	// ErrEmptyCatalog indica que o canal autenticado não possui vídeos.
	ErrEmptyCatalog = errors.New("nenhum vídeo encontrado para o canal autenticado")
)

// RequestError carrega o status HTTP e o corpo retornados pelo provedor de
// métricas. É a única informação que o classificador de novas tentativas
// precisa para decidir entre repetir, desistir ou falhar.
type RequestError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("requisição falhou com status %d: %v", e.StatusCode, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
