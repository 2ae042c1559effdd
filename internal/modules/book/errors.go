package book

import "bookshelf/internal/pkg/apperror"

var (
	ErrBookNotFound = apperror.NotFound("Livro não encontrado")
	ErrBookExists   = apperror.Conflict("Você já possui um livro com este ISBN")
)
