// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrNotFound 状态库中无此记录
	ErrNotFound = errors.New("ErrNotFound")

	// authorization errors
	ErrUnauthorizedSigner = errors.New("ErrUnauthorizedSigner")

	// vault errors
	ErrAlreadyInitialized    = errors.New("ErrAlreadyInitialized")
	ErrVaultNotFound         = errors.New("ErrVaultNotFound")
	ErrInvalidAuthority      = errors.New("ErrInvalidAuthority")
	ErrInvalidWithdrawer     = errors.New("ErrInvalidWithdrawer")
	ErrInvalidWithdrawAmount = errors.New("ErrInvalidWithdrawAmount")
	ErrInsufficientFunds     = errors.New("ErrInsufficientFunds")
	ErrCannotWithdrawReserve = errors.New("ErrCannotWithdrawReserve")

	// lottery validation errors
	ErrInvalidName         = errors.New("ErrInvalidName")
	ErrInvalidMaxTickets   = errors.New("ErrInvalidMaxTickets")
	ErrInvalidTicketPrice  = errors.New("ErrInvalidTicketPrice")
	ErrInvalidFee          = errors.New("ErrInvalidFee")
	ErrInvalidStartEndTime = errors.New("ErrInvalidStartEndTime")
	ErrLotteryExists       = errors.New("ErrLotteryExists")

	// lottery state errors
	ErrLotteryAlreadyStarted = errors.New("ErrLotteryAlreadyStarted")
	ErrLotteryNotStarted     = errors.New("ErrLotteryNotStarted")
	ErrLotteryNotEnded       = errors.New("ErrLotteryNotEnded")
	ErrLotteryEnded          = errors.New("ErrLotteryEnded")
	ErrLotteryFull           = errors.New("ErrLotteryFull")
	ErrAlreadyPurchased      = errors.New("ErrAlreadyPurchased")

	// account errors
	ErrAmount         = errors.New("ErrAmount")
	ErrNoBalance      = errors.New("ErrNoBalance")
	ErrSendSameToRecv = errors.New("ErrSendSameToRecv")

	// action errors
	ErrActionNotSupport = errors.New("ErrActionNotSupport")
	ErrInvalidParam     = errors.New("ErrInvalidParam")
	ErrExecNameNotMatch = errors.New("ErrExecNameNotMatch")
)
