// Package progression holds the per-player talent state and the pure rules
// that govern it: the validators answering "can this happen now", the
// decider that turns commands into events, and the fold that replays events
// into state.
//
// Everything here is side-effect free. The authority owns sequencing,
// persistence, and notification; this package only decides and applies.
package progression
