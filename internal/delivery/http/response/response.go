package response

import (
	"encoding/json"
	"encoding/xml"
	"net/http"

	"github.com/Pesokrava/product_catalog/internal/delivery/http/request"
)

// Envelope is the success payload shape, identical in JSON and XML
type Envelope struct {
	XMLName xml.Name    `json:"-" xml:"response"`
	Success bool        `json:"success" xml:"success"`
	Data    interface{} `json:"data,omitempty" xml:"data,omitempty"`
}

// ErrorBody is the error payload shape, identical in JSON and XML
type ErrorBody struct {
	XMLName xml.Name `json:"-" xml:"error"`
	Error   string   `json:"error" xml:"message"`
	Field   string   `json:"field,omitempty" xml:"field,omitempty"`
}

// Render writes v with the given status, encoded per the request's Accept
// header: XML when asked for, JSON otherwise. The choice never affects the
// field set.
func Render(w http.ResponseWriter, r *http.Request, statusCode int, v interface{}) {
	if request.IsXML(r.Header.Get("Accept")) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(statusCode)
		xml.NewEncoder(w).Encode(v)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// Error writes an error response
func Error(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	Render(w, r, statusCode, ErrorBody{Error: message})
}

// FieldError writes a field-attributed validation error response
func FieldError(w http.ResponseWriter, r *http.Request, statusCode int, field, message string) {
	Render(w, r, statusCode, ErrorBody{Error: message, Field: field})
}

// Success writes a 200 response with data
func Success(w http.ResponseWriter, r *http.Request, data interface{}) {
	Render(w, r, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with data
func Created(w http.ResponseWriter, r *http.Request, data interface{}) {
	Render(w, r, http.StatusCreated, Envelope{Success: true, Data: data})
}

// NoContent writes a no content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
