package repository

import "errors"

var ErrNotFound = errors.New("repository: file not found")
