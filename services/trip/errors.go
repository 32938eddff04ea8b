package trip

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is invoked from a
	// status it is not defined for.
	ErrInvalidTransition = errors.New("operation not allowed in current request status")

	// ErrNoValidOffers is returned when ranking is requested with zero
	// non-rejected offers. The request status is left untouched.
	ErrNoValidOffers = errors.New("no valid offers to rank")

	// ErrNoFinalOffer means a payment was attempted before the client
	// selected an offer. This is a programming error in the caller, not a
	// user-facing failure.
	ErrNoFinalOffer = errors.New("request has no final offer")

	// ErrFinalOfferSet guards the write-once final offer invariant.
	ErrFinalOfferSet = errors.New("final offer already selected")

	// ErrAlreadyStamped guards the write-once financial snapshot invariant.
	ErrAlreadyStamped = errors.New("financial snapshot already written")

	// ErrOfferNotFound means the referenced offer is not on the request.
	ErrOfferNotFound = errors.New("offer not found on request")

	// ErrPaymentDeclined is the user-visible payment failure. The request
	// moves to payment_failed and stays payable.
	ErrPaymentDeclined = errors.New("payment was declined")
)
