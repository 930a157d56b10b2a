package access

import (
	"context"

	"github.com/reagentlab/tracker/pkg/middleware/auth"
)

// Current is the caller carried by ctx, nil when the request is anonymous.
func Current(ctx context.Context) *Caller {
	return FromUser(auth.GetCurrentUser(ctx))
}
