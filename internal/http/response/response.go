// Package response содержит типы и функции для формирования
// унифицированных JSON-ответов HTTP-обработчиков. Конверт повторяет
// форму ответов мокового фасада: успех с данными и сообщением либо
// ошибка с текстом и числовым кодом.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response — стандартный конверт ответа сервера.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Коды ошибок конверта, совпадают с HTTP-статусами.
const (
	CodeBadRequest = 400
	CodeNotFound   = 404
	CodeConflict   = 409
	CodeInternal   = 500
)

// OK возвращает успешный Response с данными и сообщением.
func OK(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// Error возвращает Response с ошибкой и кодом.
func Error(code int, msg string) Response {
	return Response{Success: false, Error: msg, Code: code}
}

// ValidationError формирует ошибочный Response по нарушениям
// валидации. Каждое нарушение превращается в человекочитаемый текст,
// объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of the allowed values", err.Field()))
		case "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		case "datetime":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a date in format %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return Response{
		Success: false,
		Error:   strings.Join(errsMsgs, ", "),
		Code:    CodeBadRequest,
	}
}
