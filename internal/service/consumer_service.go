package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-compliance-be/internal/apperr"
	"ai-compliance-be/internal/dto"
	"ai-compliance-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	complianceService IComplianceService
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	complianceService IComplianceService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		complianceService: complianceService,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProcessDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("ConsumerService", fmt.Sprintf("Processing compliance document %s", payload.DocumentId), nil)

	if err := cs.complianceService.ProcessDocument(ctx, payload.DocumentId); err != nil {
		if isTerminal(err) {
			// The document is marked failed in the database; retrying the
			// same bytes will not change the outcome.
			cs.logger.Warn("ConsumerService", fmt.Sprintf("Document %s processing ended", payload.DocumentId), map[string]interface{}{"error": err.Error()})
			msg.Ack()
			return
		}
		cs.logger.Error("ConsumerService", fmt.Sprintf("Failed to process document %s", payload.DocumentId), map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.logger.Info("ConsumerService", fmt.Sprintf("Document processed: %s", payload.DocumentId), nil)
	msg.Ack()
}

func isTerminal(err error) bool {
	return errors.Is(err, apperr.ErrDocumentNotFound) ||
		errors.Is(err, apperr.ErrJurisdictionNotFound) ||
		errors.Is(err, apperr.ErrTextExtraction) ||
		errors.Is(err, apperr.ErrNoRequirementsExtracted)
}
