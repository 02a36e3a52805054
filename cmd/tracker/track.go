package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shenikar/safewalk/internal/bridge"
	"github.com/shenikar/safewalk/internal/checkpoint"
	"github.com/shenikar/safewalk/internal/config"
	"github.com/shenikar/safewalk/internal/connectivity"
	"github.com/shenikar/safewalk/internal/controller"
	"github.com/shenikar/safewalk/internal/models"
	"github.com/shenikar/safewalk/internal/monitor"
	"github.com/shenikar/safewalk/internal/notify"
	"github.com/shenikar/safewalk/internal/sensor"
	"github.com/shenikar/safewalk/internal/terminal"
	"github.com/shenikar/safewalk/pkg/logger"
	mqttclient "github.com/shenikar/safewalk/pkg/mqtt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	deviceID   string
	replayPath string
	contact    string
	serverURL  string
	standalone bool
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track location and control safe mode from the terminal",
	Long: `Start the tracker and read commands from standard input.

Location comes from a device topic on the MQTT broker (--device) or from a
recorded track (--replay). Alerts from the background monitor arrive over
the server WebSocket, or from an in-process monitor with --standalone.`,
	Example: `  safewalk-tracker track --device phone-1 --contact mom@example.com
  safewalk-tracker track --replay walk.yaml --standalone`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&deviceID, "device", "", "device id whose location topic to follow")
	trackCmd.Flags().StringVar(&replayPath, "replay", "", "YAML track to replay instead of a live device")
	trackCmd.Flags().StringVar(&contact, "contact", "", "emergency contact address")
	trackCmd.Flags().StringVar(&serverURL, "server", "", "background WebSocket URL (default: SERVER_URL)")
	trackCmd.Flags().BoolVar(&standalone, "standalone", false, "run the background monitor in this process")
	trackCmd.MarkFlagsMutuallyExclusive("device", "replay")
}

func runTrack(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	log := logger.NewText(logLevel)
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Локальный набор точек, при подключении к серверу заменяется его набором
	registry := checkpoint.Default()
	if cfg.CheckpointsFile != "" {
		if registry, err = checkpoint.LoadFile(cfg.CheckpointsFile); err != nil {
			return fmt.Errorf("failed to load checkpoints: %w", err)
		}
	}

	surface := terminal.NewSurface(out)
	prober := connectivity.NewHTTPProber(cfg.ProbeURL, cfg.ProbeTimeout)
	deps := controller.Dependencies{
		Map:       surface,
		Status:    surface,
		Clipboard: terminal.NewClipboard(out),
		Prober:    prober,
		Logger:    log,
	}

	locationSensor, closeSensor, err := newSensor(cfg, log)
	if err != nil {
		return err
	}
	defer closeSensor()
	deps.Sensor = locationSensor

	// Канал к фоновому монитору
	var onMessage func(func(bridge.Message))
	if standalone {
		local := bridge.NewLocal()
		defer local.Close()
		permission := models.PermissionDenied
		if cfg.NotificationsGranted() {
			permission = models.PermissionGranted
		}
		notifier := notify.NewLogNotifier(log, permission)
		mon := monitor.New(registry, notifier, prober, local, log, cfg.ProbeTimeout)
		go mon.Run(ctx, local.AttachBackground(0))

		deps.Background = local
		deps.Permissions = notifier
		onMessage = local.OnMessage
	} else {
		url := serverURL
		if url == "" {
			url = cfg.ServerURL
		}
		client, err := bridge.Dial(ctx, url, log)
		if err != nil {
			log.WithError(err).WithField("url", url).Warn("Background monitor is not reachable, alerts work only while tracking")
		} else {
			defer client.Close()
			go func() {
				if err := client.Run(ctx); err != nil {
					log.WithError(err).Warn("Connection to background monitor lost")
				}
			}()
			deps.Background = client
			onMessage = client.OnMessage

			if remote, err := fetchCheckpoints(ctx, url, cfg.ProbeTimeout); err != nil {
				log.WithError(err).Warn("Using local checkpoints, server list is not available")
			} else {
				registry = remote
			}
		}
	}
	deps.Registry = registry

	ctrl := controller.New(deps)
	if onMessage != nil {
		onMessage(ctrl.HandleMessage)
	}

	if err := ctrl.Init(ctx); err != nil && !errors.Is(err, bridge.ErrChannelUnavailable) {
		return fmt.Errorf("failed to initialize tracker: %w", err)
	}
	if contact != "" {
		ctrl.SetContact(contact)
	}

	shell := terminal.NewShell(ctrl, surface.Snapshot, out)
	err = shell.Run(ctx, cmd.InOrStdin())

	// После отмены ctx канал уже может быть закрыт и STOP_TRACKING теряется,
	// тогда монитор продолжает работать с последней позицией
	ctrl.Deactivate()
	return err
}

// fetchCheckpoints берет набор точек монитора, чтобы локальная проверка совпадала с фоновой
func fetchCheckpoints(ctx context.Context, channelURL string, timeout time.Duration) (*checkpoint.Registry, error) {
	listURL, err := checkpoint.RemoteURL(channelURL)
	if err != nil {
		return nil, err
	}
	return checkpoint.Fetch(ctx, &http.Client{Timeout: timeout}, listURL)
}

// newSensor выбирает источник местоположения, nil означает что его нет
func newSensor(cfg *config.Config, log *logrus.Logger) (controller.LocationSensor, func(), error) {
	noop := func() {}

	switch {
	case replayPath != "":
		track, err := sensor.LoadTrack(replayPath)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to load track: %w", err)
		}
		return sensor.NewReplaySensor(track, log), noop, nil

	case deviceID != "":
		client, err := mqttclient.NewMQTTClient(cfg.MQTTBroker, cfg.MQTTClientID)
		if err != nil {
			// без брокера контроллер покажет, что местоположение недоступно
			log.WithError(err).WithField("broker", cfg.MQTTBroker).Warn("Location sensor is not available")
			return nil, noop, nil
		}
		return sensor.NewMQTTSensor(client, deviceID, log), func() { client.Disconnect(250) }, nil
	}

	log.Warn("Neither --device nor --replay is set, location is not available")
	return nil, noop, nil
}
