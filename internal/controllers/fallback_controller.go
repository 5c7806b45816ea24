package controllers

import (
	"net/http"

	"github.com/estatesandstands/estates-service/internal/utils"
)

// EndpointNotFoundHandler answers any POST that no API route claims.
func EndpointNotFoundHandler(w http.ResponseWriter, r *http.Request) {
	utils.HandleAppError(w, utils.ErrEndpointNotFound)
}

// UnsupportedMethodHandler answers methods the site does not serve at all.
func UnsupportedMethodHandler(w http.ResponseWriter, r *http.Request) {
	utils.HandleAppError(w, utils.ErrUnsupportedMethod)
}
