package api

import (
	"git.solsynth.dev/hypernet/hearing/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (v *Router) requestConsultation(c *fiber.Ctx) error {
	var data struct {
		RoomLabel    string `json:"room_label" validate:"required"`
		RequestedBy  string `json:"requested_by" validate:"required"`
		RequestedFor string `json:"requested_for" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	invitationID, err := v.Consultations.RequestConsultation(
		c.Context(),
		c.Params("conferenceId"),
		data.RoomLabel,
		data.RequestedBy,
		data.RequestedFor,
	)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(fiber.Map{
		"invitation_id": invitationID,
	})
}

func (v *Router) respondConsultation(c *fiber.Ctx) error {
	var data struct {
		InvitationID string                    `json:"invitation_id"`
		RoomLabel    string                    `json:"room_label" validate:"required"`
		RequestedFor string                    `json:"requested_for" validate:"required"`
		Answer       models.ConsultationAnswer `json:"answer" validate:"required,oneof=Accepted Rejected"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := v.Consultations.RespondToConsultation(
		c.Context(),
		c.Params("conferenceId"),
		data.InvitationID,
		data.RoomLabel,
		data.RequestedFor,
		data.Answer,
	); err != nil {
		return mapError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (v *Router) getInvitation(c *fiber.Ctx) error {
	invitation, err := v.Consultations.GetInvitation(c.Context(), c.Params("invitationId"))
	if err != nil {
		return mapError(err)
	} else if invitation == nil || invitation.ConferenceID != c.Params("conferenceId") {
		return fiber.NewError(fiber.StatusNotFound, "consultation invitation was not found")
	}
	return c.JSON(invitation)
}

func (v *Router) lockRoom(c *fiber.Ctx) error {
	var data struct {
		Locked bool `json:"locked"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	room, err := v.Consultations.LockRoom(c.Context(), c.Params("conferenceId"), c.Params("roomLabel"), data.Locked)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(room)
}
