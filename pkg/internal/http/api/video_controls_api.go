package api

import (
	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (v *Router) getVideoControls(c *fiber.Ctx) error {
	state, err := v.VideoControls.GetVideoControlStateForConference(c.Context(), c.Params("conferenceId"))
	if err != nil {
		return mapError(err)
	} else if state == nil {
		state = models.VideoControlState{}
	}
	return c.JSON(state)
}

func (v *Router) setVideoControls(c *fiber.Ctx) error {
	var state models.VideoControlState
	if err := c.BodyParser(&state); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := v.VideoControls.SetVideoControlStateForConference(c.Context(), c.Params("conferenceId"), state); err != nil {
		return mapError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (v *Router) updateMediaStatus(c *fiber.Ctx) error {
	var status models.MediaStatus
	if err := c.BodyParser(&status); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	current, err := v.MediaStatus.UpdateMediaStatus(c.Context(), c.Params("conferenceId"), c.Params("participantId"), status)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(current)
}
