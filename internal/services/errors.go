package services

import "errors"

var errEmptyCatalogue = errors.New("listing catalogue is empty")
