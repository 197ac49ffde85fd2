package queue

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/pledgesync/pkg/model"
)

var (
	ErrQueueFull = errors.New("notification queue is full")
	ErrClosed    = errors.New("notification queue is closed")
)

const (
	chanSize           = 1024
	maxElementPerBatch = 10 // SQS Batch limit is 10 items per request
	flushInterval      = 5 * time.Second
)

// Sender ships pledge confirmations to an SQS queue consumed by the mailer.
// Confirmations are buffered and sent in batches.
type Sender struct {
	client   sqsiface.SQSAPI
	url      *string
	items    chan *model.Confirmation
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(ctx context.Context, client sqsiface.SQSAPI, url string) *Sender {
	return newSender(ctx, client, url, flushInterval)
}

func newSender(ctx context.Context, client sqsiface.SQSAPI, url string, interval time.Duration) *Sender {
	ctx, cancel := context.WithCancel(ctx)

	sender := &Sender{
		client:   client,
		url:      aws.String(url),
		items:    make(chan *model.Confirmation, chanSize),
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}

	sender.wg.Add(1)
	go sender.transmit()

	return sender
}

// Notify enqueues confirmation for delivery, it never blocks the caller.
func (s *Sender) Notify(_ context.Context, confirmation *model.Confirmation) error {
	if s.ctx.Err() != nil {
		return ErrClosed
	}

	select {
	case s.items <- confirmation:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops the sender and flushes buffered confirmations.
func (s *Sender) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *Sender) transmit() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var list = make([]*model.Confirmation, 0, maxElementPerBatch)

	flush := func(ctx context.Context) {
		if len(list) == 0 {
			return
		}

		if err := s.send(ctx, list); err != nil {
			log.WithError(err).Error("failed to send batch")
		}

		list = make([]*model.Confirmation, 0, maxElementPerBatch)
	}

	for {
		select {
		case <-ticker.C:
			// Flush list if not filled up entirely within interval
			flush(s.ctx)

		case item := <-s.items:
			// Append an item to list and flush if filled up
			list = append(list, item)
			if len(list) == maxElementPerBatch {
				flush(s.ctx)
			}

		case <-s.ctx.Done():
			// Exiting, flush leftovers
		drain:
			for {
				select {
				case item := <-s.items:
					list = append(list, item)
					if len(list) == maxElementPerBatch {
						flush(context.Background())
					}
				default:
					break drain
				}
			}

			flush(context.Background())
			return
		}
	}
}

func (s *Sender) send(ctx context.Context, list []*model.Confirmation) error {
	if len(list) == 0 {
		return nil
	}

	sendInput := &sqs.SendMessageBatchInput{
		QueueUrl: s.url,
	}

	for idx, item := range list {
		data, err := json.Marshal(item)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal confirmation for pledge %q", item.PledgeID)
		}

		sendInput.Entries = append(sendInput.Entries, &sqs.SendMessageBatchRequestEntry{
			Id:          aws.String(strconv.Itoa(idx)),
			MessageBody: aws.String(string(data)),
		})
	}

	log.Debugf("sending batch of %d confirmation(s)", len(list))

	output, err := s.client.SendMessageBatchWithContext(ctx, sendInput)
	if err != nil {
		return errors.Wrap(err, "failed to send message batch")
	}

	for _, failed := range output.Failed {
		idx, _ := strconv.Atoi(aws.StringValue(failed.Id))
		if idx < 0 || idx >= len(list) {
			continue
		}

		log.WithFields(log.Fields{
			"pledge_id": list[idx].PledgeID,
			"code":      aws.StringValue(failed.Code),
		}).Errorf("confirmation rejected by SQS: %s", aws.StringValue(failed.Message))
	}

	log.Infof("sent %d confirmation(s) to SQS", len(list)-len(output.Failed))
	return nil
}
