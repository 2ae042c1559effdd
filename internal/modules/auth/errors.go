package auth

import "bookshelf/internal/pkg/apperror"

var (
	ErrUserNotFound  = apperror.NotFound("Usuário não encontrado")
	ErrWrongPassword = apperror.Forbidden("Usuário ou senha incorretos")
)
