// Package cli provides the interactive WP Cloud vault command-line client.
//
// It wires configuration, the session store, API services, and an
// interactive REPL. Typical flow: log in, list the owned files, upload a
// file via the delegated write credential, and request content tags for a
// selection.
//
// Key commands:
//   - register / login / logout / whoami
//   - list (refresh) the ownership-scoped catalog
//   - upload a local file
//   - select a listed file, analyze it, show its tags
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
