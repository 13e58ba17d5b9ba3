package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Listing not found!")
	// ErrConflict will throw when an atomic update loses the race to a concurrent writer
	ErrConflict = errors.New("Someone beat you to it, try again!")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// bid rejections, in the order the validator applies them
	ErrUnauthenticated = errors.New("Must be logged in to do that!")
	ErrExpired         = errors.New("This listing has expired!")
	ErrInvalidInput    = errors.New("Invalid Input")
	ErrBidTooLow       = errors.New("Bid amount cannot be less than or equal to the current price!")
	ErrSelfBid         = errors.New("You cannot bid on your own listing!")

	// ErrInvalidCredentials will throw when a login or security answer check fails
	ErrInvalidCredentials = errors.New("Invalid username or password!")

	// finalization rejections
	ErrForbidden        = errors.New("You are not allowed to do that!")
	ErrNoWinner         = errors.New("This listing expired without any bids!")
	ErrAlreadyFinalized = errors.New("This listing has already been finalized!")
)
