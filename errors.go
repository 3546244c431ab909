package gbwt

import "errors"

// Sentinel errors for the one class of failure the core does not express
// as a return-value sentinel: a malformed compressed byte stream. A
// record array is assumed well-formed; these are fatal precondition
// violations raised either while encoding a DynamicRecord whose body
// runs were left inconsistent with its bodySize, or while decoding
// bytes that did not originate from WriteBWT (or were corrupted in
// storage), never during normal query execution.
var (
	ErrTruncatedRecord   = errors.New("gbwt: record byte stream ends before its body is fully decoded")
	ErrRunLengthMismatch = errors.New("gbwt: sum of run lengths does not match the declared body size")
	ErrMalformedHeader   = errors.New("gbwt: outgoing-edge header could not be decoded")
)
