// Package lib groups the integrations that do not fit strictly into
// another layer.
//
// It contains the public ladder client, the Redis-backed session store
// and leaderboard, background job processing (Asynq) and the Resend email
// client.
package lib
