package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

var allCodes = []ErrorCode{
	AuthInvalidCredentials,
	AuthMissingToken,
	AuthExpiredToken,
	AuthInvalidTokenFormat,
	AuthTokenRevoked,
	ValidationGeneral,
	ValidationRequiredField,
	ValidationInvalidDate,
	ValidationInvalidDateRange,
	ValidationInvalidID,
	ValidationInvalidAmount,
	UserNotFound,
	UserAlreadyExists,
	CategoryNotFound,
	CategoryReferenceInvalid,
	CategoryAlreadyExists,
	TransactionNotFound,
	TransactionInvalidType,
	SystemInternalError,
	SystemDatabaseError,
	SystemServiceUnavailable,
	SystemRateLimitExceeded,
	SystemRouteNotFound,
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "invalid credentials", code: AuthInvalidCredentials, expected: "Invalid username or password"},
		{name: "invalid date", code: ValidationInvalidDate, expected: "Invalid date, expected YYYY-MM-DD"},
		{name: "inverted range", code: ValidationInvalidDateRange, expected: "startDate must not be after endDate"},
		{name: "category not found", code: CategoryNotFound, expected: "Category not found"},
		{name: "transaction not found", code: TransactionNotFound, expected: "Transaction not found"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes {
		s.True(IsValidErrorCode(code), "expected %s to be registered", code)
	}

	for _, code := range []ErrorCode{"", "AUTH_999", "ACCOUNT_001"} {
		s.False(IsValidErrorCode(code), "expected %s to be unknown", code)
	}
}

func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes {
		s.False(seen[code], "duplicate error code: %s", code)
		seen[code] = true
	}
	s.Len(errorMessages, len(allCodes))
}

func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"AUTH_", "VALIDATION_", "USER_", "CATEGORY_", "TRANSACTION_", "SYSTEM_"}

	for _, code := range allCodes {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
				break
			}
		}
		s.True(matched, "code %s has an unknown prefix", code)
	}
}
