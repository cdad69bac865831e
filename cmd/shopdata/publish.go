package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopdata/internal/application/publish"
	"shopdata/internal/infrastructure/messaging/kafka"
)

func newPublishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Stream generated order items and reviews to Kafka as Avro records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			producer, err := kafka.NewRecordProducer(a.cfg.Kafka, a.log)
			if err != nil {
				return err
			}
			defer producer.Close()

			topics := publish.Topics{
				OrderItems: a.cfg.Kafka.OrderItemTopic,
				Reviews:    a.cfg.Kafka.ReviewTopic,
			}
			svc, err := publish.NewService(a.csv(), producer, topics, a.log)
			if err != nil {
				return err
			}

			sum, err := svc.Publish(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Published %d order items to %s and %d reviews to %s (run %s)\n",
				sum.OrderItems, topics.OrderItems, sum.Reviews, topics.Reviews, a.runID)
			return nil
		},
	}
}
