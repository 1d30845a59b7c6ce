// Package apperrors defines the application's typed errors and exit codes.
// It centralizes the mapping from failure categories (configuration,
// overflow, timeout, cancellation, mismatch) to process exit statuses.
package apperrors
