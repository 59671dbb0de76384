package httpapi

import (
	"errors"
	"net/http"

	"unitconv/internal/domain"
)

// ConvertRequest is the POST /api/v1/convert body. Units may be names,
// symbols or aliases.
type ConvertRequest struct {
	Value string `json:"value"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// ConvertResponse is returned by /api/v1/convert.
type ConvertResponse struct {
	Value  string `json:"value"`
	From   string `json:"from"`
	To     string `json:"to"`
	Result string `json:"result"`
}

// UnitInfo describes one unit in /api/v1/units.
type UnitInfo struct {
	Name    string   `json:"name"`
	Symbol  string   `json:"symbol"`
	Aliases []string `json:"aliases"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

const (
	CodeInvalidNumber       = "invalid_number"
	CodeUnknownUnit         = "unknown_unit"
	CodeUnsupportedUnitPair = "unsupported_unit_pair"
	CodeBadRequest          = "bad_request"
	CodeMethodNotAllowed    = "method_not_allowed"
	CodeRateLimited         = "rate_limited"
)

// classify maps a conversion error to its HTTP status and code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidNumber):
		return http.StatusUnprocessableEntity, CodeInvalidNumber
	case errors.Is(err, domain.ErrUnknownUnit):
		return http.StatusBadRequest, CodeUnknownUnit
	case errors.Is(err, domain.ErrUnsupportedUnitPair):
		return http.StatusUnprocessableEntity, CodeUnsupportedUnitPair
	default:
		return http.StatusBadRequest, CodeBadRequest
	}
}

// sentinel is the inverse of classify.
func sentinel(code string) error {
	switch code {
	case CodeInvalidNumber:
		return domain.ErrInvalidNumber
	case CodeUnknownUnit:
		return domain.ErrUnknownUnit
	case CodeUnsupportedUnitPair:
		return domain.ErrUnsupportedUnitPair
	default:
		return nil
	}
}

func unitInfos() []UnitInfo {
	units := domain.AllUnits()
	out := make([]UnitInfo, 0, len(units))
	for _, u := range units {
		out = append(out, UnitInfo{Name: u.String(), Symbol: u.Symbol(), Aliases: u.Aliases()})
	}
	return out
}
