// Package email provides outbound email delivery for notifications.
package email

import "context"

// Sender delivers transactional email. Implementations must be safe for
// concurrent use.
type Sender interface {
	SendTaskReminderEmail(ctx context.Context, toEmail, taskTitle, accountName string, dueDate string) error
	SendLeadConvertedEmail(ctx context.Context, toEmail, leadName, accountName string, contactsCount, tasksCount int) error
	SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

// NoopSender is used when email delivery is disabled by configuration.
type NoopSender struct{}

func (NoopSender) SendTaskReminderEmail(ctx context.Context, toEmail, taskTitle, accountName string, dueDate string) error {
	return nil
}

func (NoopSender) SendLeadConvertedEmail(ctx context.Context, toEmail, leadName, accountName string, contactsCount, tasksCount int) error {
	return nil
}

func (NoopSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return nil
}
