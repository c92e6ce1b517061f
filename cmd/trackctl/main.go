package main

import (
	"fmt"
	"log"
	"os"

	"conversion-relay-service/internal/tracking/adapters/beacon"
	"conversion-relay-service/internal/tracking/adapters/pixel"
	"conversion-relay-service/internal/tracking/core/domain"
	"conversion-relay-service/internal/tracking/core/usecase"

	"github.com/spf13/cobra"
)

var (
	pixelID   string
	relayURL  string
	eventName string
	email     string
	method    string
)

var rootCmd = &cobra.Command{
	Use:   "trackctl",
	Short: "Fire one tracked conversion event at a running relay",
	Run: func(cmd *cobra.Command, args []string) {
		runTrack()
	},
}

func init() {
	// Bind flags with fallback to environment variables
	rootCmd.Flags().StringVar(&pixelID, "pixel-id", getEnv("PIXEL_ID", ""), "Advertising account pixel id")
	rootCmd.Flags().StringVar(&relayURL, "relay-url", getEnv("RELAY_URL", "http://localhost:8080/forwardEvent"), "Relay endpoint URL")
	rootCmd.Flags().StringVar(&eventName, "event", "Share", "Event name to report")
	rootCmd.Flags().StringVar(&email, "email", "", "Optional user email attached to the event")
	rootCmd.Flags().StringVar(&method, "method", "native", "Share method recorded in the event params")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func runTrack() {
	// Stand-in pixel: prints what a browser pixel would have received.
	stdoutPixel := func(eventName string, params map[string]any, dedup map[string]string) {
		fmt.Printf("pixel: %s params=%v eventID=%s\n", eventName, params, dedup["eventID"])
	}

	sender := beacon.NewSender(nil, log.Default())
	tracker := usecase.NewTrackEventUseCase(pixel.NewEmitter(stdoutPixel, log.Default()), sender, log.Default())

	var user *domain.UserData
	if email != "" {
		user = &domain.UserData{Email: email}
	}

	settings := domain.RelaySettings{
		AccountPixelID: pixelID,
		RelayURL:       relayURL,
	}

	tracker.Track(settings, eventName, map[string]any{"method": method}, user)

	// The beacon send is detached; wait it out before the process exits.
	sender.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
