package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	pkg "git.solsynth.dev/hypernet/hearing/pkg/internal"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/cache"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/database"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/grpc"
	server "git.solsynth.dev/hypernet/hearing/pkg/internal/http"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/http/api"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	viper.SetDefault("cache.conference_ttl", "4h")
	viper.SetDefault("cache.invitation_ttl", "1h")
	viper.SetDefault("cache.closed_grace", "30m")
	viper.SetDefault("consultation.response_timeout", "2m")
	viper.SetDefault("consultation.sweep_schedule", "@every 15s")
	viper.SetDefault("calling.token_duration", "6h")
	viper.SetDefault("security.ticket_duration", "12h")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	if viper.GetBool("debug.enabled") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Connect to database
	db, err := database.NewSource(
		viper.GetString("database.dsn"),
		viper.GetString("database.prefix"),
		viper.GetBool("debug.database"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(db); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Initialize cache
	backing, err := cache.NewStore()
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing cache.")
	}
	marshal := cache.NewMarshaler(backing)

	// Assemble services
	hub := services.NewHub(viper.GetInt("websocket.queue_size"))
	conferences := services.NewConferenceService(
		services.NewConferenceStore(
			marshal,
			viper.GetDuration("cache.conference_ttl"),
			viper.GetDuration("cache.closed_grace"),
		),
		services.NewDatabaseConferenceSource(db),
	)
	tracker := services.NewConsultationTracker(marshal, viper.GetDuration("cache.invitation_ttl"))
	notifier := services.NewConsultationNotifier(tracker, hub)
	timeouts := services.NewConsultationTimeouts(conferences, tracker, notifier, viper.GetDuration("consultation.response_timeout"))
	videoControls := services.NewVideoControlStore(marshal, viper.GetDuration("cache.conference_ttl"))

	var media *services.MediaService
	var syncer services.MediaSyncer
	if len(viper.GetString("calling.endpoint")) > 0 {
		media = services.NewMediaService(
			viper.GetString("calling.endpoint"),
			viper.GetString("calling.api_key"),
			viper.GetString("calling.api_secret"),
			viper.GetDuration("calling.token_duration"),
		)
		syncer = media
	} else {
		log.Warn().Msg("Media server is not configured, media tokens and status mirroring are disabled...")
	}

	router := &api.Router{
		Conferences:    conferences,
		ConferenceEvts: services.NewConferenceEvents(conferences, hub),
		Consultations:  services.NewConsultationService(conferences, tracker, notifier, timeouts),
		Layouts:        services.NewLayoutService(conferences, hub),
		VideoControls:  videoControls,
		MediaStatus:    services.NewMediaStatusService(conferences, videoControls, hub, syncer),
		Dispatcher:     services.NewEventDispatcher(conferences, videoControls, notifier, hub),
		Tickets: services.NewTicketIssuer(
			viper.GetString("security.ticket_secret"),
			viper.GetDuration("security.ticket_duration"),
		),
		Media: media,
		Hub:   hub,
	}

	// Server
	app := server.NewServer(router, viper.GetBool("debug.print_routes"))
	go app.Listen(viper.GetString("bind"))

	rpc := grpc.NewGrpc()
	go func() {
		if err := rpc.Listen(viper.GetString("grpc_bind")); err != nil {
			log.Fatal().Err(err).Msg("An error occurred when starting grpc server...")
		}
	}()

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	if _, err := quartz.AddFunc(viper.GetString("consultation.sweep_schedule"), func() {
		timeouts.DoSweep(context.Background())
	}); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when scheduling consultation sweeps.")
	}
	quartz.AddFunc("@every 60m", func() {
		services.DoAutoDatabaseCleanup(db)
	})
	quartz.Start()

	// Messages
	log.Info().Msgf("Hearing v%s is started...", pkg.AppVersion)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msgf("Hearing v%s is quitting...", pkg.AppVersion)

	quartz.Stop()
	rpc.Shutdown()
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("An error occurred when shutting down server...")
	}
}
