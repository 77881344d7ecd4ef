package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("booking session not found")
	ErrSessionStep     = errors.New("booking step out of order")
)

var (
	ErrEndNotAfterStart   = errors.New("end time must be after start time")
	ErrSlotTaken          = errors.New("slot already booked for this venue at the selected date and time")
	ErrSlotTakenMeanwhile = errors.New("slot booked meanwhile, choose another time")
)

var (
	ErrEmbedFailed = errors.New("error reading uploaded file")
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
)

var (
	ErrValidation = errors.New("validation error")
)
