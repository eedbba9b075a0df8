package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrOrderNotFound = errors.New("order not found")
)

// APIError - ошибка бекенда с извлечённым описанием
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// errorDetail - поле detail в ответе бекенда. Формат непостоянный:
// либо строка, либо список объектов с полем msg (ошибки валидации)
type errorDetail struct {
	Detail json.RawMessage `json:"detail"`
}

// HandleErrorResponse - разбор не-2xx ответа бекенда
func HandleErrorResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrOrderNotFound
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     ExtractDetail(resp.Body),
	}
}

// ExtractDetail - извлечение человекочитаемого сообщения из тела ошибки
func ExtractDetail(body io.Reader) string {
	const fallback = "request failed"

	var payload errorDetail
	if err := json.NewDecoder(body).Decode(&payload); err != nil || len(payload.Detail) == 0 {
		return fallback
	}

	var message string
	if err := json.Unmarshal(payload.Detail, &message); err == nil {
		return message
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil && len(items) > 0 && items[0].Msg != "" {
		return items[0].Msg
	}
	return fallback
}
