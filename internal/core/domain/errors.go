package domain

// Kind classifies inventory errors so transport adapters can map them
// to wire status codes without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindAlreadyExists
	KindNotFound
	KindInsufficientStock
	KindNoOpPrice
)

// Error is an inventory error with a stable message and a Kind.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind returns the error classification.
func (e *Error) Kind() Kind { return e.kind }

var (
	ErrEmptySKU          = &Error{KindInvalidArgument, "provided SKU was empty"}
	ErrMissingIdentifier = &Error{KindInvalidArgument, "no ID or SKU provided for item"}
	ErrMissingStock      = &Error{KindInvalidArgument, "no stock provided for item"}
	ErrInvalidPrice      = &Error{KindInvalidArgument, "provided PRICE was invalid"}
	ErrZeroQuantityDelta = &Error{KindInvalidArgument, "invalid quantity of 0 provided"}
	ErrDuplicateItem     = &Error{KindAlreadyExists, "item already exists in inventory"}
	ErrItemNotFound      = &Error{KindNotFound, "the item requested was not found"}
	ErrInsufficientStock = &Error{KindInsufficientStock, "not enough inventory for quantity change"}
	ErrPriceUnchanged    = &Error{KindNoOpPrice, "item is already at this price"}
	ErrCorruptStock      = &Error{KindInternal, "no stock provided for item"}
)

// KindOf returns the Kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	if de, ok := err.(*Error); ok {
		return de.kind
	}
	return KindInternal
}
