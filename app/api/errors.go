package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Lesaloon/MR-Label-Converter/types"
)

func ErrorHandler(c *fiber.Ctx, err error) error {
	if ApiError, ok := err.(Error); ok {
		return c.Status(ApiError.Code).JSON(ApiError)
	}
	if ValError, ok := err.(types.ValidationError); ok {
		return c.Status(ValError.Status).JSON(ValError)
	}

	var fiberErr *fiber.Error
	ApiError := NewError(fiber.StatusInternalServerError, err.Error())
	if errors.As(err, &fiberErr) {
		ApiError.Code = fiberErr.Code
	}
	curTime := time.Now()
	fmt.Printf("%s Request failed with code %d and message: %s\n", &curTime, ApiError.Code, ApiError.Message)
	return c.Status(ApiError.Code).JSON(ApiError)
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

// Error implements the Error interface
func (e Error) Error() string {
	return e.Message
}

func NewError(code int, err string) Error {
	return Error{
		Code:    code,
		Message: err,
	}
}

func ErrBadRequest() Error {
	return Error{
		Code:    fiber.StatusBadRequest,
		Message: "invalid request",
	}
}

func ErrNoFiles() Error {
	return Error{
		Code:    fiber.StatusBadRequest,
		Message: "no files uploaded, expected at least one 'files' part",
	}
}

func ErrUnsupportedMedia(filename string) Error {
	return Error{
		Code:    fiber.StatusUnsupportedMediaType,
		Message: fmt.Sprintf("%s is not a PDF file", filename),
	}
}
