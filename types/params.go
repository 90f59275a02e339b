package types

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Validater interface {
	Validate() map[string]string
}

func Validate(v Validater) map[string]string {
	return v.Validate()
}

// ConvertParams is the optional per-request conversion surface. Every
// field mirrors a ConversionConfig field; absent fields keep the
// defaults. Fit and alignment strings are not validated here: unknown
// values select the engine's documented fallbacks.
type ConvertParams struct {
	LeftRatio      *float64 `form:"left_ratio" json:"left_ratio,omitempty" validate:"omitempty,gt=0,lte=1"`
	AutoLeftMin    *float64 `form:"auto_left_min" json:"auto_left_min,omitempty" validate:"omitempty,gte=0,lte=1"`
	AutoLeftMargin *float64 `form:"auto_left_margin" json:"auto_left_margin,omitempty" validate:"omitempty,gte=0"`
	AutoLeftGap    *float64 `form:"auto_left_gap" json:"auto_left_gap,omitempty" validate:"omitempty,gte=1"`
	Rotate         *int     `form:"rotate" json:"rotate,omitempty"`
	Page           *string  `form:"page" json:"page,omitempty"`
	Margin         *float64 `form:"margin" json:"margin,omitempty" validate:"omitempty,gte=0"`
	Fit            *string  `form:"fit" json:"fit,omitempty"`
	Scale          *float64 `form:"scale" json:"scale,omitempty" validate:"omitempty,gt=0"`
	FillWidth      *bool    `form:"fill_width" json:"fill_width,omitempty"`
	HAlign         *string  `form:"halign" json:"halign,omitempty"`
	HAlignOffset   *float64 `form:"halign_offset" json:"halign_offset,omitempty"`
	HAlignBleed    *float64 `form:"halign_bleed" json:"halign_bleed,omitempty" validate:"omitempty,gte=0"`
	VAlign         *string  `form:"valign" json:"valign,omitempty"`
	DebugBoxes     *bool    `form:"debug_boxes" json:"debug_boxes,omitempty"`
}

func (params *ConvertParams) Validate() map[string]string {
	validate := validator.New()
	if err := validate.Struct(params); err != nil {
		errs := err.(validator.ValidationErrors)
		errors := make(map[string]string)
		for _, e := range errs {
			errors[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return errors
	}
	return nil
}

// Config merges the params into the default conversion config.
func (params *ConvertParams) Config() ConversionConfig {
	cfg := DefaultConversionConfig()
	if params.LeftRatio != nil {
		cfg.LeftRatio = params.LeftRatio
	}
	if params.AutoLeftMin != nil {
		cfg.AutoLeftMin = *params.AutoLeftMin
	}
	if params.AutoLeftMargin != nil {
		cfg.AutoLeftMargin = *params.AutoLeftMargin
	}
	if params.AutoLeftGap != nil {
		cfg.AutoLeftGap = *params.AutoLeftGap
	}
	if params.Rotate != nil {
		cfg.Rotate = *params.Rotate
	}
	if params.Page != nil {
		cfg.Page = *params.Page
	}
	if params.Margin != nil {
		cfg.Margin = *params.Margin
	}
	if params.Fit != nil {
		cfg.Fit = *params.Fit
	}
	if params.Scale != nil {
		cfg.Scale = *params.Scale
	}
	if params.FillWidth != nil {
		cfg.FillWidth = *params.FillWidth
	}
	if params.HAlign != nil {
		cfg.HAlign = *params.HAlign
	}
	if params.HAlignOffset != nil {
		cfg.HAlignOffset = *params.HAlignOffset
	}
	if params.HAlignBleed != nil {
		cfg.HAlignBleed = *params.HAlignBleed
	}
	if params.VAlign != nil {
		cfg.VAlign = *params.VAlign
	}
	if params.DebugBoxes != nil {
		cfg.DebugBoxes = *params.DebugBoxes
	}
	return cfg
}

func NewValidationError(errors map[string]string) ValidationError {
	return ValidationError{
		Status: http.StatusUnprocessableEntity,
		Errors: errors,
	}
}

type ValidationError struct {
	Status int               `json:"status"`
	Errors map[string]string `json:"errors"`
}

func (e ValidationError) Error() string {
	return "validation failed"
}
