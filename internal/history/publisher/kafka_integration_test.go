//go:build integration

package publisher_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/briclabs/evcoordinator-sub000/internal/history/models"
	"github.com/briclabs/evcoordinator-sub000/internal/history/publisher"
	"github.com/briclabs/evcoordinator-sub000/pkg/testutil/containers"
)

type KafkaSuite struct {
	suite.Suite
	brokers []string
}

func TestKafkaSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaSuite))
}

func (s *KafkaSuite) SetupSuite() {
	s.brokers = containers.GetManager().GetRedpanda(s.T()).Brokers
}

func (s *KafkaSuite) TestPublishKeysBySourceTable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	topic := "evc.history.test"
	pub, err := publisher.NewKafka(s.brokers, topic, nil)
	s.Require().NoError(err)
	defer pub.Close()

	s.Require().NoError(pub.EnsureTopic(ctx, 1, 1))
	s.Require().NoError(pub.EnsureTopic(ctx, 1, 1), "second call tolerates an existing topic")

	id := int64(42)
	record := models.Record{
		ID:          &id,
		EventID:     "evt-42",
		ActorID:     7,
		Action:      models.ActionUpdated,
		SourceTable: "transaction",
		NewData:     json.RawMessage(`{"amount":75.00}`),
		OldData:     json.RawMessage(`{"amount":50.00}`),
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	s.Require().NoError(pub.Publish(ctx, record))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())
	records := fetches.Records()
	s.Require().NotEmpty(records)

	got := records[0]
	s.Equal("transaction", string(got.Key))
	var decoded models.Record
	s.Require().NoError(json.Unmarshal(got.Value, &decoded))
	s.Equal("evt-42", decoded.EventID)
	s.Equal(models.ActionUpdated, decoded.Action)
}
