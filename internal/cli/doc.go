// Package cli is the console shell of tutorbook.
//
// It wires configuration, logging, the credential store, the catalog and the
// reservation log into a flow.Flow, and adapts the process's standard streams
// to the flow's line-oriented Input. Passwords are read without echo when
// standard input is a terminal.
//
// The shell is started via App.Run, which blocks until the user exits or
// input ends.
package cli
