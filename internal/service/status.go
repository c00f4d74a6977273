package service

// ProviderStatus is the provider's own status vocabulary, passed through
// unchanged. Session flow uses open/complete/expired, intent flow the
// requires_*/processing/succeeded/canceled set.
type ProviderStatus string

const (
	StatusOpen     ProviderStatus = "open"
	StatusComplete ProviderStatus = "complete"
	StatusExpired  ProviderStatus = "expired"

	StatusRequiresPaymentMethod ProviderStatus = "requires_payment_method"
	StatusRequiresConfirmation  ProviderStatus = "requires_confirmation"
	StatusRequiresAction        ProviderStatus = "requires_action"
	StatusProcessing            ProviderStatus = "processing"
	StatusRequiresCapture       ProviderStatus = "requires_capture"
	StatusSucceeded             ProviderStatus = "succeeded"
	StatusCanceled              ProviderStatus = "canceled"
)

type StatusBucket int

const (
	BucketPending StatusBucket = iota
	BucketSuccess
	BucketFailure
)

// statusBuckets maps every provider status to exactly one bucket.
// requires_payment_method is a failure here: on return navigation it means
// the attempt bounced, not that payment is still being set up.
var statusBuckets = map[ProviderStatus]StatusBucket{
	StatusOpen:     BucketPending,
	StatusComplete: BucketSuccess,
	StatusExpired:  BucketFailure,

	StatusRequiresPaymentMethod: BucketFailure,
	StatusRequiresConfirmation:  BucketPending,
	StatusRequiresAction:        BucketPending,
	StatusProcessing:            BucketPending,
	StatusRequiresCapture:       BucketPending,
	StatusSucceeded:             BucketSuccess,
	StatusCanceled:              BucketFailure,
}

// AllProviderStatuses exists so tests can assert the mapping stays
// exhaustive when the provider's status set changes.
var AllProviderStatuses = []ProviderStatus{
	StatusOpen,
	StatusComplete,
	StatusExpired,
	StatusRequiresPaymentMethod,
	StatusRequiresConfirmation,
	StatusRequiresAction,
	StatusProcessing,
	StatusRequiresCapture,
	StatusSucceeded,
	StatusCanceled,
}

// BucketFor returns the bucket for a provider status. ok is false for
// statuses outside the known vocabulary; callers must treat those as a
// provider error, never guess.
func BucketFor(status ProviderStatus) (StatusBucket, bool) {
	bucket, ok := statusBuckets[status]
	return bucket, ok
}
