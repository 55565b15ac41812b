// Package cli is the interactive customer client.
//
// It wires configuration, the gRPC client, the event bus, the reload
// coordinator, the edit model and the list controller, then runs a REPL over
// the live list. The list reloads by itself after every successful save or
// remove and whenever the filter changes; a superseded load is cancelled.
//
// Commands: list, filter <all|name|email> [text], new, select <n>,
// set <field> <value>, show, save, remove <n>, help, exit.
package cli
