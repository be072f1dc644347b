package model

import "errors"

var (
	ErrValidation           = errors.New("validation error")                   // 400
	ErrPartNotFound         = errors.New("part not found")                     // 404
	ErrSupplierNotFound     = errors.New("supplier not found")                 // 404
	ErrOrderNotFound        = errors.New("order not found")                    // 404
	ErrRuleNotFound         = errors.New("reorder rule not found")             // 404
	ErrUsageNotFound        = errors.New("usage record not found")             // 404
	ErrNotificationNotFound = errors.New("notification not found")             // 404
	ErrInvalidTransition    = errors.New("invalid order transition")           // 409
	ErrOrderOutstanding     = errors.New("order already outstanding for part") // 409
	ErrDuplicateService     = errors.New("service usage already recorded")     // 409
	ErrPolicyViolation      = errors.New("price exceeds rule max price")       // 422
	ErrInsufficientStock    = errors.New("insufficient stock")                 // 422
)
