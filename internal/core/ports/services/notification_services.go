package services

import "context"

// PushSender delivers a push notification to one device token.
type PushSender interface {
	Send(ctx context.Context, token, title, body string) error
}

// Mailer sends a single plain-text mail.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NotifierSvcFacade runs one pass of the event notification dispatch.
type NotifierSvcFacade interface {
	DispatchUpcoming(ctx context.Context) error
}
