// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Lottery 彩票记录：按名字寻址，跨轮次复用同一个槽位
type Lottery struct {
	Name         string
	TicketPrice  int64
	MaxTickets   int64
	StartTime    int64
	EndTime      int64
	Fee          int64
	Participants []string
	Winner       string
	Status       int32
	Round        int64
}

// LotteryCreate 创建一个新彩票
type LotteryCreate struct {
	Name        string
	TicketPrice int64
	MaxTickets  int64
	StartTime   int64
	EndTime     int64
	Fee         int64
}

// LotterySetFee 调整抽成比例，仅限 pending 状态
type LotterySetFee struct {
	Name string
	Fee  int64
}

// LotterySetTicketPrice 调整票价，仅限 pending 状态
type LotterySetTicketPrice struct {
	Name        string
	TicketPrice int64
}

// LotterySetTime 调整起止时间，仅限 pending 状态
type LotterySetTime struct {
	Name      string
	StartTime int64
	EndTime   int64
}

// LotteryBuy 购买一张彩票
type LotteryBuy struct {
	Name string
}

// LotteryEnd 管理员触发开奖
type LotteryEnd struct {
	Name string
}

// LotteryClaim 中奖者领奖
type LotteryClaim struct {
	Name string
}

// LotteryReset 重置彩票进入下一轮
type LotteryReset struct {
	Name      string
	StartTime int64
	EndTime   int64
}

// SolpotAction 合约动作，Ty 决定哪个字段有效
type SolpotAction struct {
	Ty             int32
	Initialize     *VaultInitialize
	SetAuthority   *VaultSetAuthority
	SetWithdrawer  *VaultSetWithdrawer
	Withdraw       *VaultWithdraw
	Create         *LotteryCreate
	SetFee         *LotterySetFee
	SetTicketPrice *LotterySetTicketPrice
	SetTime        *LotterySetTime
	Buy            *LotteryBuy
	End            *LotteryEnd
	Claim          *LotteryClaim
	Reset          *LotteryReset
}

// GetName nil安全取名字
func (m *LotteryCreate) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

// GetName nil安全取名字
func (m *LotterySetFee) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

// GetName nil安全取名字
func (m *LotterySetTicketPrice) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

// GetName nil安全取名字
func (m *LotterySetTime) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

// GetName nil安全取名字
func (m *LotteryBuy) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

// GetName nil安全取名字
func (m *LotteryEnd) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

// GetName nil安全取名字
func (m *LotteryClaim) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

// GetName nil安全取名字
func (m *LotteryReset) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

// ReceiptLottery 彩票操作回执
type ReceiptLottery struct {
	Name       string
	Status     int32
	PrevStatus int32
	Round      int64
	Addr       string
	Amount     int64
	Winner     string
	Payout     int64
	FeeAmount  int64
}

// LotteryBuyRecord 本地索引：某轮某地址的购票记录
type LotteryBuyRecord struct {
	Addr   string
	Amount int64
	Round  int64
}

// LotteryDrawRecord 本地索引：某轮的开奖结果
type LotteryDrawRecord struct {
	Winner string
	Round  int64
}

// ReplyLotteryBalance 查询当前奖池
type ReplyLotteryBalance struct {
	Name string
	Pool int64
}

// ReqLotteryInfo 按名字查询
type ReqLotteryInfo struct {
	Name string
}

// ReqLotteryStatus 按状态列举
type ReqLotteryStatus struct {
	Status int32
}

// ReplyLotteryList 名字列表
type ReplyLotteryList struct {
	Names []string
}

// ReqLotteryRound 按名字和轮次查询历史记录
type ReqLotteryRound struct {
	Name  string
	Round int64
}

// ReplyLotteryBuyRecords 某轮全部购票记录
type ReplyLotteryBuyRecords struct {
	Records []*LotteryBuyRecord
}
