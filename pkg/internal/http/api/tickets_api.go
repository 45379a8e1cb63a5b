package api

import (
	"fmt"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *Router) getParticipant(c *fiber.Ctx) (models.Conference, models.Participant, error) {
	conference, err := v.Conferences.GetConference(c.Context(), c.Params("conferenceId"))
	if err != nil {
		return conference, models.Participant{}, mapError(err)
	}
	participant, ok := conference.GetParticipant(c.Params("participantId"))
	if !ok {
		return conference, participant, mapError(fmt.Errorf("%w: %s", services.ErrParticipantNotFound, c.Params("participantId")))
	}
	return conference, participant, nil
}

func (v *Router) issueTicket(c *fiber.Ctx) error {
	conference, participant, err := v.getParticipant(c)
	if err != nil {
		return err
	}

	if tk, err := v.Tickets.Issue(conference, participant); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(fiber.Map{
			"ticket": tk,
		})
	}
}

func (v *Router) exchangeMediaToken(c *fiber.Ctx) error {
	if v.Media == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "media server is not configured")
	}

	conference, participant, err := v.getParticipant(c)
	if err != nil {
		return err
	}

	if tk, err := v.Media.EncodeRoomToken(conference, participant); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(fiber.Map{
			"token":    tk,
			"room":     services.MediaRoomName(conference.ID, participant.CurrentRoom),
			"endpoint": v.Media.Endpoint(),
		})
	}
}
