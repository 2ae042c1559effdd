package user

import "bookshelf/internal/pkg/apperror"

var ErrUserExists = apperror.Conflict("Usuário já existe")
