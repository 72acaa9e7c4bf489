// Package command implements the mutating operations of the activity service
// as go-command handlers. Commands validate input, delegate roster mutations
// to the registry, and emit masked events through the configured hooks.
package command
