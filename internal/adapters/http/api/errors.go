package api

import "errors"

// ErrMalformedPayload marks a write body that is not valid JSON.
var ErrMalformedPayload = errors.New("malformed payload")

// invalidJSONMessage is the fixed wire message for ErrMalformedPayload.
const invalidJSONMessage = "Invalid JSON"
