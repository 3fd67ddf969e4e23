package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStoreErr(t *testing.T) {
	opaque := errors.New("disk on fire")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"missing row becomes the kind", gorm.ErrRecordNotFound, ErrOrderNotFound},
		{"wrapped missing row becomes the kind", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), ErrOrderNotFound},
		{"deadline becomes unavailable", context.DeadlineExceeded, ErrStoreUnavailable},
		{"wrapped deadline becomes unavailable", fmt.Errorf("query: %w", context.DeadlineExceeded), ErrStoreUnavailable},
		{"anything else passes through", opaque, opaque},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := storeErr(tc.in, ErrOrderNotFound)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestLookupAfterDeadlineIsUnavailable(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newTestOrderService(t, db)

	ctx, cancel := context.WithDeadline(context.Background(), time.Unix(0, 0))
	defer cancel()

	_, err := svc.Get(ctx, customer(1), 1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
