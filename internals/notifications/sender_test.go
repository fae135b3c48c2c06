package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk_backend/internals/configs"
)

func TestNewFromConfigWithoutKeyLogsOnly(t *testing.T) {
	s := NewFromConfig(configs.MailConfig{})
	_, ok := s.(LogSender)
	require.True(t, ok)
	assert.NoError(t, s.SendWelcome(context.Background(), "a@b.co", "ann"))
	assert.NoError(t, s.SendContactEnquiry(context.Background(), Enquiry{Email: "x@y.z"}))
}

func TestEnquiryContentEscapesHTML(t *testing.T) {
	subject, text, body := enquiryContent(Enquiry{
		Name:     "<b>Bob</b>",
		Subject:  "Fees",
		Message:  "hello",
		Course:   "Go",
		IsOnline: true,
	})
	assert.Equal(t, "New enquiry: Fees", subject)
	assert.Contains(t, text, "Course: Go (online)")
	assert.Contains(t, body, "&lt;b&gt;Bob&lt;/b&gt;")
	assert.NotContains(t, body, "<b>Bob</b>")
}

func TestSendgridEnquirySkippedWithoutRecipient(t *testing.T) {
	s := NewSendgridSender(nil, configs.MailConfig{FromName: "x", FromAddress: "x@y.z"})
	assert.NoError(t, s.SendContactEnquiry(context.Background(), Enquiry{}))
}
