package handlers

import "net/http"

const welcomeMessage = "Welcome to the Point Management System API!"

type messageResponse struct {
	Message string `json:"message"`
}

func NewRootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: welcomeMessage})
	})
}
