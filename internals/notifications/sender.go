package notifications

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"

	"coursedesk_backend/internals/configs"
)

// Enquiry is the part of a contact request that goes into the staff mail.
type Enquiry struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Message  string
	Course   string
	IsOnline bool
}

type Sender interface {
	SendWelcome(ctx context.Context, to, userName string) error
	SendContactEnquiry(ctx context.Context, e Enquiry) error
}

// NewFromConfig returns a SendGrid sender when an API key is configured,
// otherwise a sender that only logs.
func NewFromConfig(cfg configs.MailConfig) Sender {
	if strings.TrimSpace(cfg.SendgridAPIKey) == "" {
		log.Warn("SENDGRID_API_KEY is not set, mails are only logged")
		return LogSender{}
	}
	return NewSendgridSender(sendgrid.NewSendClient(cfg.SendgridAPIKey), cfg)
}

/* ===============================
   SendGrid
=================================*/

type SendgridSender struct {
	client   *sendgrid.Client
	from     *mail.Email
	notifyTo string
}

func NewSendgridSender(client *sendgrid.Client, cfg configs.MailConfig) *SendgridSender {
	return &SendgridSender{
		client:   client,
		from:     mail.NewEmail(cfg.FromName, cfg.FromAddress),
		notifyTo: strings.TrimSpace(cfg.ContactNotifyEmail),
	}
}

func (s *SendgridSender) SendWelcome(ctx context.Context, to, userName string) error {
	subject, text, htmlBody := welcomeContent(userName)
	return s.send(ctx, mail.NewEmail(userName, to), subject, text, htmlBody)
}

func (s *SendgridSender) SendContactEnquiry(ctx context.Context, e Enquiry) error {
	if s.notifyTo == "" {
		log.Debug("CONTACT_NOTIFY_EMAIL is not set, enquiry mail skipped")
		return nil
	}
	subject, text, htmlBody := enquiryContent(e)
	return s.send(ctx, mail.NewEmail("Admissions", s.notifyTo), subject, text, htmlBody)
}

func (s *SendgridSender) send(ctx context.Context, to *mail.Email, subject, text, htmlBody string) error {
	message := mail.NewSingleEmail(s.from, subject, to, text, htmlBody)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "sendgrid send")
	}
	if response.StatusCode >= 300 {
		return errors.Errorf("sendgrid responded %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

/* ===============================
   Log only
=================================*/

type LogSender struct{}

func (LogSender) SendWelcome(_ context.Context, to, userName string) error {
	log.WithFields(log.Fields{"to": to, "user_name": userName}).Info("[mail] welcome")
	return nil
}

func (LogSender) SendContactEnquiry(_ context.Context, e Enquiry) error {
	log.WithFields(log.Fields{"from": e.Email, "subject": e.Subject}).Info("[mail] contact enquiry")
	return nil
}

// Dispatch runs fn in the background with its own timeout. Failures are logged only.
func Dispatch(kind string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			log.WithError(err).Warnf("[mail] %s not sent", kind)
		}
	}()
}

func welcomeContent(userName string) (subject, text, htmlBody string) {
	subject = "Your Course Desk account is ready"
	text = fmt.Sprintf("Hi %s,\n\nAn administrator created a dashboard account for you. "+
		"Sign in with your email or user name.", userName)
	htmlBody = fmt.Sprintf("<p>Hi <strong>%s</strong>,</p><p>An administrator created a dashboard account for you. "+
		"Sign in with your email or user name.</p>", html.EscapeString(userName))
	return
}

func enquiryContent(e Enquiry) (subject, text, htmlBody string) {
	mode := "offline"
	if e.IsOnline {
		mode = "online"
	}
	subject = "New enquiry: " + e.Subject
	text = fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nCourse: %s (%s)\n\n%s",
		e.Name, e.Email, e.Phone, e.Course, mode, e.Message)
	htmlBody = fmt.Sprintf("<p><strong>%s</strong> &lt;%s&gt; %s</p><p>Course: %s (%s)</p><p>%s</p>",
		html.EscapeString(e.Name), html.EscapeString(e.Email), html.EscapeString(e.Phone),
		html.EscapeString(e.Course), mode, html.EscapeString(e.Message))
	return
}
