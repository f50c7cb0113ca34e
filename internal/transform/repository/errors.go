package repository

import "errors"

var ErrNotFound = errors.New("repository: progress not found")
