package api

import (
	"errors"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/services"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

var errReceiveOnly = errors.New("gateway is receive only")

func (v *Router) ticketMiddleware(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	claims, err := v.Tickets.Parse(c.Query("tk"))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	c.Locals("ticket", claims)
	return c.Next()
}

// groupGateway only delivers packages, anything the client sends is answered with an error frame.
func (v *Router) groupGateway(c *websocket.Conn) {
	claims := c.Locals("ticket").(services.TicketClaims)

	id := v.Hub.Register(c, claims.Groups...)
	log.Info().
		Str("conference", claims.ConferenceID).
		Str("participant", claims.ParticipantID).
		Msg("Group gateway connected...")

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
		v.Hub.Reply(id, models.WebSocketPackageFromError(errReceiveOnly))
	}

	v.Hub.Unregister(id)
}
