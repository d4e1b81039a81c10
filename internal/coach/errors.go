package coach

import "errors"

var (
	ErrEmptyMessage       = errors.New("message must not be empty")
	ErrEmptyUserID        = errors.New("user id must not be empty")
	ErrInvalidAssessment  = errors.New("invalid assessment profile")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrEmptyReply         = errors.New("model reply is empty after sanitizing")
)
