package repository

import (
	"context"
	"time"
)

// Every store call runs under this deadline so no request blocks
// indefinitely on the database.
const queryTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, queryTimeout)
}
