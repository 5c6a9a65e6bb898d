package suggesting

import "errors"

var (
	ErrAccountNotFound      = errors.New("conta não encontrada")
	ErrSuggestionNotFound   = errors.New("sugestão não encontrada")
	ErrSuggestionNotPending = errors.New("sugestão não está mais pendente")
)
