package model

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrISBNTaken    = errors.New("isbn already exists")
)
