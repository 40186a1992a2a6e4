package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrValidationNoSettingName = errors.New("no setting name provided")
	ErrValidationNoReportKind  = errors.New("no report kind provided")
)
