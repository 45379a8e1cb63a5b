package api

import (
	"git.solsynth.dev/hypernet/hearing/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (v *Router) getConference(c *fiber.Ctx) error {
	conference, err := v.Conferences.GetConference(c.Context(), c.Params("conferenceId"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(conference)
}

func (v *Router) dispatchEvent(c *fiber.Ctx) error {
	var event models.ConferenceEvent
	if err := exts.BindAndValidate(c, &event); err != nil {
		return err
	}

	if !v.Dispatcher.Supports(event.EventType) {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported event type: "+string(event.EventType))
	}
	if err := v.Dispatcher.Dispatch(c.Context(), event); err != nil {
		return mapError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (v *Router) conferenceAdded(c *fiber.Ctx) error {
	if err := v.ConferenceEvts.NotifyNewConferenceAdded(c.Context(), c.Params("conferenceId")); err != nil {
		return mapError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (v *Router) updateEndpoints(c *fiber.Ctx) error {
	var data struct {
		Endpoints []models.Endpoint `json:"endpoints" validate:"dive"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := v.ConferenceEvts.UpdateEndpoints(c.Context(), c.Params("conferenceId"), data.Endpoints); err != nil {
		return mapError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
