package service

import (
	"fmt"

	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/validation"
)

// singleKey unpacks a unique-key query after checking that it holds
// exactly one entry whose key is a field of shape. The value is returned
// unchecked: "id" and other numeric values are parsed by the caller,
// anything else must pass IsValidStrings.
func singleKey(query model.Query, shape any) (key, value string, err error) {
	if len(query) != 1 {
		return "", "", errs.NewBadRequestError("Exactly one search key must be provided.", true, nil, nil, nil)
	}

	for k, v := range query {
		key, value = k, v
	}

	if !validation.IsPropertyOf(key, shape) {
		return "", "", errs.NewBadRequestError(fmt.Sprintf("Unsupported search key: %s.", key), true, nil, nil, nil)
	}

	return key, value, nil
}

func invalidIDError() *errs.HTTPError {
	return errs.NewBadRequestError("A valid id must be a positive whole number.", true, nil, nil, nil)
}

func invalidValueError(key string) *errs.HTTPError {
	return errs.NewBadRequestError(fmt.Sprintf("A non-blank value must be provided for %s.", key), true, nil, nil, nil)
}

func invalidNumberError(key string) *errs.HTTPError {
	return errs.NewBadRequestError(fmt.Sprintf("%s must be a positive whole number.", key), true, nil, nil, nil)
}
