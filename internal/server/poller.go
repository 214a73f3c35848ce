package server

import (
	"context"

	"squad-maker-service/internal/poller"
)

// Poller defines the roster refresh behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	RefreshNow(ctx context.Context) error
	Status() poller.Status
}
