// Package channel carries talent commands from clients to the authority.
// Clients build commands and submit them; they never mutate progression
// state directly. A Local submitter calls the authority in process, while a
// Forwarder hands commands to a transport owned by the caller.
package channel

import (
	"context"
	"fmt"

	apperrors "github.com/Slatyo/Valheim-Viking/internal/platform/errors"
	"github.com/Slatyo/Valheim-Viking/internal/talents/authority"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/command"
	"github.com/google/uuid"
)

// Submitter delivers one command to the progression authority.
type Submitter interface {
	Submit(ctx context.Context, cmd command.Command) (authority.Result, error)
}

// Local submits commands to an in-process authority, stamping a request id
// on commands that lack one.
type Local struct {
	Authority *authority.Authority
}

// Submit delivers the command to the wrapped authority.
func (l Local) Submit(ctx context.Context, cmd command.Command) (authority.Result, error) {
	if l.Authority == nil {
		return authority.Result{}, fmt.Errorf("authority is not configured")
	}
	if cmd.RequestID == "" {
		cmd.RequestID = uuid.NewString()
	}
	return l.Authority.Submit(ctx, cmd)
}

// SendFunc delivers a command over a caller-owned transport and returns the
// authority's result.
type SendFunc func(ctx context.Context, cmd command.Command) (authority.Result, error)

// Forwarder submits commands through a SendFunc. It exists so remote
// clients share the same submission surface as in-process callers.
type Forwarder struct {
	Send SendFunc
}

// Submit forwards the command, stamping a request id on commands that lack
// one. A Forwarder with no SendFunc rejects every command.
func (f Forwarder) Submit(ctx context.Context, cmd command.Command) (authority.Result, error) {
	if f.Send == nil {
		return authority.Result{}, apperrors.New(apperrors.CodeNotAuthorized, "no command transport configured")
	}
	if cmd.RequestID == "" {
		cmd.RequestID = uuid.NewString()
	}
	return f.Send(ctx, cmd)
}

var (
	_ Submitter = Local{}
	_ Submitter = Forwarder{}
)
