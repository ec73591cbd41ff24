// Package command defines the canonical command envelope and contract used
// across the progression write path.
//
// Commands express player intent from UIs, consoles, and remote peers. They
// are the stable boundary before the progression decider so that business
// rules are evaluated only against the authority's own state, in submission
// order, with a specific rejection reason for every declined command.
package command
