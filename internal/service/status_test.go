package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Every status the provider can hand back must map to exactly one bucket.
// If the provider's vocabulary grows, AllProviderStatuses and statusBuckets
// must grow together and this test catches the drift.
func TestStatusBucketMappingIsExhaustive(t *testing.T) {
	require.Len(t, statusBuckets, len(AllProviderStatuses))

	for _, status := range AllProviderStatuses {
		_, ok := BucketFor(status)
		require.True(t, ok, "status %q has no bucket", status)
	}
}

func TestStatusBuckets(t *testing.T) {
	cases := map[ProviderStatus]StatusBucket{
		StatusOpen:                  BucketPending,
		StatusComplete:              BucketSuccess,
		StatusExpired:               BucketFailure,
		StatusRequiresPaymentMethod: BucketFailure,
		StatusRequiresConfirmation:  BucketPending,
		StatusRequiresAction:        BucketPending,
		StatusProcessing:            BucketPending,
		StatusRequiresCapture:       BucketPending,
		StatusSucceeded:             BucketSuccess,
		StatusCanceled:              BucketFailure,
	}

	for status, want := range cases {
		bucket, ok := BucketFor(status)
		require.True(t, ok)
		require.Equal(t, want, bucket, "status %q", status)
	}
}

func TestBucketForUnknownStatus(t *testing.T) {
	_, ok := BucketFor("mystery")
	require.False(t, ok)
}
