package payroll

import (
	"errors"
	"strings"
	"time"
)

// Payments have no natural single-column key, so the API addresses them with a
// composite id of the form "{eid}_{YYYYMMDD}". A payment whose paid date is
// unknown encodes as "{eid}_unknown" and decodes to a nil date, which readers
// treat as "most recent payment for this employee".

const (
	paymentIDSeparator = "_"
	unknownDateToken   = "unknown"
	paymentDateLayout  = "20060102"

	trainingIDPrefix = "tr_"
)

var ErrMalformedPaymentID = errors.New("malformed payment id")

// EncodePaymentID builds the composite payment id for an employee and date.
func EncodePaymentID(eid string, paidDate *time.Time) string {
	if paidDate == nil {
		return eid + paymentIDSeparator + unknownDateToken
	}
	return eid + paymentIDSeparator + paidDate.Format(paymentDateLayout)
}

// DecodePaymentID splits a composite payment id into employee id and paid
// date. A nil returned date means the id carried the unknown-date token.
// Anything that is not exactly "{eid}_{YYYYMMDD}" or "{eid}_unknown" is
// malformed, including syntactically valid but impossible calendar dates.
func DecodePaymentID(id string) (string, *time.Time, error) {
	parts := strings.Split(id, paymentIDSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", nil, ErrMalformedPaymentID
	}

	eid := parts[0]
	if parts[1] == unknownDateToken {
		return eid, nil, nil
	}

	if len(parts[1]) != len(paymentDateLayout) {
		return "", nil, ErrMalformedPaymentID
	}
	date, err := time.Parse(paymentDateLayout, parts[1])
	if err != nil {
		return "", nil, ErrMalformedPaymentID
	}

	return eid, &date, nil
}

// EncodeTrainingID builds the display id for a training request.
func EncodeTrainingID(eid string) string {
	return trainingIDPrefix + eid
}

// DecodeTrainingID extracts the employee id from a training request id. A bare
// employee id without the prefix is accepted as-is.
func DecodeTrainingID(id string) string {
	return strings.TrimPrefix(id, trainingIDPrefix)
}
