package service

import "errors"

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrSchemeNotFound     = errors.New("scheme not found")
	ErrAdvertNotFound     = errors.New("grant advert not found")

	ErrGrantNotPublished        = errors.New("grant is not open for applications")
	ErrSubmissionAlreadyCreated = errors.New("a submission already exists for this application")
	ErrSubmissionNotReady       = errors.New("submission has incomplete sections")
	ErrAlreadySubmitted         = errors.New("submission has already been submitted")

	ErrAdvertIncomplete = errors.New("advert has incomplete sections")
)
