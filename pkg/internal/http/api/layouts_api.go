package api

import (
	"git.solsynth.dev/hypernet/hearing/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func (v *Router) getLayout(c *fiber.Ctx) error {
	layout, err := v.Layouts.GetCurrentLayout(c.Context(), c.Params("conferenceId"))
	if err != nil {
		return mapError(err)
	} else if layout == nil {
		return fiber.NewError(fiber.StatusNotFound, "conference was not found")
	}
	return c.JSON(fiber.Map{
		"layout": *layout,
	})
}

func (v *Router) updateLayout(c *fiber.Ctx) error {
	var data struct {
		ChangedBy string               `json:"changed_by" validate:"required"`
		Layout    models.HearingLayout `json:"layout" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if !lo.Contains(models.HearingLayouts, data.Layout) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown hearing layout: "+string(data.Layout))
	}

	if err := v.Layouts.UpdateLayout(c.Context(), c.Params("conferenceId"), data.ChangedBy, data.Layout); err != nil {
		return mapError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
