package api

import (
	"errors"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func mapError(err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return err
	case errors.Is(err, services.ErrConferenceNotFound), errors.Is(err, services.ErrParticipantNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUnsupportedEvent):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("An error occurred when handling request...")
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
