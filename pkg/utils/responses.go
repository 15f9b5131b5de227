package utils

import (
	"encoding/json"
	"net/http"
)

// messageBody is the error payload shape; success payloads are written raw
// because the dashboard frontend consumes unenveloped arrays and objects.
type messageBody struct {
	Message string `json:"message"`
}

// ResponseJSON writes any payload with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusCreated, payload)
}

// ------------- Error responses -------------

// ResponseMessage writes {"message": ...} with a custom status code
func ResponseMessage(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, messageBody{Message: message})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusBadRequest, message)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusNotFound, message)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusInternalServerError, message)
}
