// Package lib groups modules that do not fit strictly into other layers:
// shared utilities, background job processing (Redis/Asynq) and the email
// client (Resend) used for contact notifications.
package lib
