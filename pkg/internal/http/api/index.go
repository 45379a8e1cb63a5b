package api

import (
	"git.solsynth.dev/hypernet/hearing/pkg/internal/services"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type Router struct {
	Conferences    *services.ConferenceService
	ConferenceEvts *services.ConferenceEvents
	Consultations  *services.ConsultationService
	Layouts        *services.LayoutService
	VideoControls  *services.VideoControlStore
	MediaStatus    *services.MediaStatusService
	Dispatcher     *services.EventDispatcher
	Tickets        *services.TicketIssuer
	Media          *services.MediaService
	Hub            *services.Hub
}

func (v *Router) MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		api.Post("/events", v.dispatchEvent)
		api.Get("/ws", v.ticketMiddleware, websocket.New(v.groupGateway))

		conferences := api.Group("/conferences/:conferenceId").Name("Conferences API")
		{
			conferences.Get("/", v.getConference)
			conferences.Post("/added", v.conferenceAdded)
			conferences.Put("/endpoints", v.updateEndpoints)

			conferences.Post("/consultations", v.requestConsultation)
			conferences.Post("/consultations/respond", v.respondConsultation)
			conferences.Get("/consultations/:invitationId", v.getInvitation)
			conferences.Put("/rooms/:roomLabel/lock", v.lockRoom)

			conferences.Get("/layout", v.getLayout)
			conferences.Put("/layout", v.updateLayout)

			conferences.Get("/video-controls", v.getVideoControls)
			conferences.Put("/video-controls", v.setVideoControls)
			conferences.Put("/participants/:participantId/media-status", v.updateMediaStatus)

			conferences.Post("/participants/:participantId/ticket", v.issueTicket)
			conferences.Post("/participants/:participantId/media-token", v.exchangeMediaToken)
		}
	}
}
