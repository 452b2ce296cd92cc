package errs

// Sentinels shared by the command and query sides.
var (
	// Listing errors
	ErrListingNotFound = New("food listing not found")

	// Request errors
	ErrRequestNotFound        = New("food request not found")
	ErrRequestAlreadyAccepted = New("food request already accepted")

	// Ownership
	ErrForbidden = New("forbidden")

	// Input errors
	ErrValidation = New("validation failed")

	ErrDatabaseOperationFailed = New("database operation failed")
)
