// Package cli provides the interactive K-Fitness command-line client.
//
// Admins manage student accounts (plans, expiration, photos); students read
// their weekly plan and manage their own progress photos. Every command goes
// through a session.Session, which enforces role and expiration gates.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See runREPL for the command table.
package cli
