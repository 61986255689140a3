package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ComputahSaysNo/catz-court-booking/internal/logger"
	"github.com/ComputahSaysNo/catz-court-booking/internal/metrics"
)

const (
	queueKey       = "notifications"
	failedQueueKey = "notifications:failed"
	maxTries       = 3
)

type EmailJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Type    string    `json:"type"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Service queues notification emails on redis and drains the queue from a
// background worker, so booking requests never wait on SMTP.
type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) enqueue(ctx context.Context, job EmailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", job.To, err)
		metrics.RecordEmail(job.Type, "queue_failed")
		return err
	}

	logger.Infof("Email queued: %s to %s", job.Subject, job.To)
	return nil
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	return s.enqueue(ctx, EmailJob{
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Type:    "generic",
		Created: time.Now(),
	})
}

// SendBookingConfirmation queues the mail sent after a successful booking.
func (s *Service) SendBookingConfirmation(ctx context.Context, to, name, courtName, date, start, end string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking is confirmed:\n\n%s on %s, %s - %s\n\nSee you on court!",
		name, courtName, date, start, end,
	)

	return s.enqueue(ctx, EmailJob{
		To:      to,
		Name:    name,
		Subject: fmt.Sprintf("Booking confirmed: %s on %s", courtName, date),
		Body:    body,
		Type:    "booking_confirmation",
		Created: time.Now(),
	})
}

// SendBookingCancellation queues the mail sent after a booking is deleted.
func (s *Service) SendBookingCancellation(ctx context.Context, to, name, courtName, date, start, end string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking has been cancelled:\n\n%s on %s, %s - %s",
		name, courtName, date, start, end,
	)

	return s.enqueue(ctx, EmailJob{
		To:      to,
		Name:    name,
		Subject: fmt.Sprintf("Booking cancelled: %s on %s", courtName, date),
		Body:    body,
		Type:    "booking_cancellation",
		Created: time.Now(),
	})
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, err := s.redis.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0
	}
	return length
}

// Start drains the queue until ctx is cancelled. Run it in its own
// goroutine.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email job data: %v", err)
		return
	}

	metrics.EmailQueueLength.Set(float64(s.QueueLength(ctx)))

	job.Tries++
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s (attempt %d): %v", job.To, job.Tries, err)

		if job.Tries < maxTries {
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			return
		}

		metrics.RecordEmail(job.Type, "failed")
		s.saveFailed(job, err)
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Infof("Email sent to %s", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, sendErr error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": sendErr.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, data)
	logger.Errorf("Email to %s moved to failed queue after %d attempts", job.To, job.Tries)
}
