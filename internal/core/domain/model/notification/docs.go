// Package notification contains the email outbox row and its retry policy.
package notification
