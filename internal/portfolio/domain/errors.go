package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrAdminNotFound   = errors.New("admin not found")
	ErrAdminExists     = errors.New("admin user already exists")
)
