package model

import "errors"

var (
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrNameTaken         = errors.New("name already exists")
)
