package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Lesaloon/MR-Label-Converter/types"
)

type ConfigHandler struct{}

func NewConfigHandler() *ConfigHandler {
	return &ConfigHandler{}
}

// HandleGetConfig returns the conversion defaults applied when a
// request omits a parameter.
func (h ConfigHandler) HandleGetConfig(c *fiber.Ctx) error {
	return c.JSON(types.DefaultConversionConfig())
}

// HandleCheckConfig validates a set of conversion parameters and
// echoes back the effective config without converting anything.
func (h ConfigHandler) HandleCheckConfig(c *fiber.Ctx) error {
	var params types.ConvertParams
	if err := c.BodyParser(&params); err != nil {
		return ErrBadRequest()
	}
	if errs := types.Validate(&params); len(errs) > 0 {
		return types.NewValidationError(errs)
	}
	return c.JSON(params.Config())
}
