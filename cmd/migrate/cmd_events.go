package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"ai-counsellor-be/pkg/events"
	pktNats "ai-counsellor-be/pkg/nats"

	"github.com/spf13/cobra"
)

var eventsDurable string

var eventsCmd = &cobra.Command{
	Use:   "events [subject]",
	Short: "Print advising domain events as they arrive",
	Long:  `Tails the ADVISING JetStream stream. The subject defaults to every advising event.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEvents,
}

func init() {
	eventsCmd.Flags().StringVar(&eventsDurable, "durable", "counsellor-cli", "durable consumer name")
}

func runEvents(cmd *cobra.Command, args []string) error {
	if cfg.Nats.URL == "" {
		return fmt.Errorf("NATS_URL is not set")
	}
	subject := pktNats.SubjectPrefix + ".>"
	if len(args) == 1 {
		subject = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The publisher owns the stream definition.
	pub, err := pktNats.NewPublisher(ctx, cfg.Nats.URL)
	if err != nil {
		return err
	}
	pub.Close()

	sub, err := pktNats.NewSubscriber(cfg.Nats.URL)
	if err != nil {
		return err
	}
	defer sub.Close()

	out := json.NewEncoder(cmd.OutOrStdout())
	err = sub.Subscribe(ctx, subject, eventsDurable, func(ctx context.Context, e events.Event) error {
		return out.Encode(events.Wrap(e))
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Listening on %s (Ctrl+C to stop)\n", subject)
	<-ctx.Done()
	return nil
}
