// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/solpot/solpot/account"
	"github.com/solpot/solpot/common/address"
	dbm "github.com/solpot/solpot/common/db"
	"github.com/solpot/solpot/types"
)

var (
	addrAuthority  = address.PubKeyToAddress([]byte("test pubkey authority")).String()
	addrWithdrawer = address.PubKeyToAddress([]byte("test pubkey withdrawer")).String()
	addrBuyerA     = address.PubKeyToAddress([]byte("test pubkey buyer a")).String()
	addrBuyerB     = address.PubKeyToAddress([]byte("test pubkey buyer b")).String()
	addrBuyerC     = address.PubKeyToAddress([]byte("test pubkey buyer c")).String()
	addrBuyerD     = address.PubKeyToAddress([]byte("test pubkey buyer d")).String()
	addrBuyerE     = address.PubKeyToAddress([]byte("test pubkey buyer e")).String()
	addrStranger   = address.PubKeyToAddress([]byte("test pubkey stranger")).String()
)

const (
	testPrice = 100 * types.Coin
	testStart = int64(1000)
	testEnd   = int64(2000)
)

type SolpotTestSuite struct {
	suite.Suite
	stateDB dbm.DB
	localDB dbm.DB
	solpot  *Solpot
	nonce   int64
}

func TestRunSolpotSuite(t *testing.T) {
	suite.Run(t, new(SolpotTestSuite))
}

func (s *SolpotTestSuite) SetupTest() {
	stateDB, err := dbm.NewGoMemDB("state", "", 128)
	require.NoError(s.T(), err)
	localDB, err := dbm.NewGoMemDB("local", "", 128)
	require.NoError(s.T(), err)

	s.stateDB = stateDB
	s.localDB = localDB
	s.solpot = New(types.DefaultConfig(), stateDB, localDB)
	s.solpot.SetEnv(1, testStart+500, []byte("parent hash for the draw"))
	s.nonce = 0
}

func (s *SolpotTestSuite) exec(action *types.SolpotAction, signer string) (*types.Receipt, error) {
	s.nonce++
	tx := &types.Transaction{
		Execer:  []byte(s.solpot.GetName()),
		Payload: types.Encode(action),
		Signer:  signer,
		Nonce:   s.nonce,
		To:      s.solpot.GetAddr(),
	}
	receipt, err := s.solpot.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	_, err = s.solpot.ExecLocal(tx, receipt)
	require.NoError(s.T(), err)
	return receipt, nil
}

func (s *SolpotTestSuite) fund(addr string, amount int64) {
	_, err := s.solpot.Deposit(addr, amount)
	require.NoError(s.T(), err)
}

func (s *SolpotTestSuite) balance(addr string) int64 {
	acc, err := account.NewAccountDB(s.solpot.GetName(), "pot", s.stateDB)
	require.NoError(s.T(), err)
	return acc.LoadAccount(addr).Balance
}

func (s *SolpotTestSuite) initVault() {
	_, err := s.exec(&types.SolpotAction{
		Ty:         types.SolpotActionInitialize,
		Initialize: &types.VaultInitialize{},
	}, addrAuthority)
	require.NoError(s.T(), err)
}

func (s *SolpotTestSuite) createLottery(name string) {
	_, err := s.exec(&types.SolpotAction{
		Ty: types.SolpotActionCreate,
		Create: &types.LotteryCreate{
			Name:        name,
			TicketPrice: testPrice,
			MaxTickets:  10,
			StartTime:   testStart,
			EndTime:     testEnd,
			Fee:         10,
		},
	}, addrAuthority)
	require.NoError(s.T(), err)
}

func (s *SolpotTestSuite) buy(name, buyer string) (*types.Receipt, error) {
	return s.exec(&types.SolpotAction{
		Ty:  types.SolpotActionBuy,
		Buy: &types.LotteryBuy{Name: name},
	}, buyer)
}

func (s *SolpotTestSuite) lottery(name string) *types.Lottery {
	lottery, err := s.solpot.getLotteryInfo(name)
	require.NoError(s.T(), err)
	return lottery
}

func (s *SolpotTestSuite) TestVaultInitialize() {
	s.initVault()

	vault, err := s.solpot.getVaultInfo()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), addrAuthority, vault.Authority)
	assert.Equal(s.T(), addrAuthority, vault.Withdrawer)

	_, err = s.exec(&types.SolpotAction{
		Ty:         types.SolpotActionInitialize,
		Initialize: &types.VaultInitialize{},
	}, addrStranger)
	assert.Equal(s.T(), types.ErrAlreadyInitialized, err)
}

func (s *SolpotTestSuite) TestVaultRoles() {
	s.initVault()

	_, err := s.exec(&types.SolpotAction{
		Ty:           types.SolpotActionSetAuthority,
		SetAuthority: &types.VaultSetAuthority{Authority: addrStranger},
	}, addrStranger)
	assert.Equal(s.T(), types.ErrUnauthorizedSigner, err)

	_, err = s.exec(&types.SolpotAction{
		Ty:           types.SolpotActionSetAuthority,
		SetAuthority: &types.VaultSetAuthority{Authority: addrAuthority},
	}, addrAuthority)
	assert.Equal(s.T(), types.ErrInvalidAuthority, err)

	_, err = s.exec(&types.SolpotAction{
		Ty:            types.SolpotActionSetWithdrawer,
		SetWithdrawer: &types.VaultSetWithdrawer{Withdrawer: addrWithdrawer},
	}, addrAuthority)
	require.NoError(s.T(), err)

	_, err = s.exec(&types.SolpotAction{
		Ty:           types.SolpotActionSetAuthority,
		SetAuthority: &types.VaultSetAuthority{Authority: addrStranger},
	}, addrAuthority)
	require.NoError(s.T(), err)

	vault, err := s.solpot.getVaultInfo()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), addrStranger, vault.Authority)
	assert.Equal(s.T(), addrWithdrawer, vault.Withdrawer)

	// 旧 authority 的权限随更换即刻失效
	_, err = s.exec(&types.SolpotAction{
		Ty:            types.SolpotActionSetWithdrawer,
		SetWithdrawer: &types.VaultSetWithdrawer{Withdrawer: addrBuyerA},
	}, addrAuthority)
	assert.Equal(s.T(), types.ErrUnauthorizedSigner, err)
}

func (s *SolpotTestSuite) withdraw(amount int64, signer string) error {
	_, err := s.exec(&types.SolpotAction{
		Ty:       types.SolpotActionWithdraw,
		Withdraw: &types.VaultWithdraw{Amount: amount},
	}, signer)
	return err
}

func (s *SolpotTestSuite) TestVaultWithdraw() {
	s.initVault()

	reserve := types.DefaultReserveFloor
	surplus := int64(500)
	s.fund(s.solpot.GetAddr(), reserve+surplus)

	assert.Equal(s.T(), types.ErrUnauthorizedSigner, s.withdraw(surplus, addrStranger))
	assert.Equal(s.T(), types.ErrInvalidWithdrawAmount, s.withdraw(0, addrAuthority))
	assert.Equal(s.T(), types.ErrInsufficientFunds, s.withdraw(reserve+surplus+1, addrAuthority))
	// 付得起但会击穿保留额
	assert.Equal(s.T(), types.ErrCannotWithdrawReserve, s.withdraw(surplus+1, addrAuthority))

	require.NoError(s.T(), s.withdraw(surplus, addrAuthority))
	assert.Equal(s.T(), reserve, s.balance(s.solpot.GetAddr()))
	assert.Equal(s.T(), surplus, s.balance(addrAuthority))

	assert.Equal(s.T(), types.ErrCannotWithdrawReserve, s.withdraw(1, addrAuthority))
}

func (s *SolpotTestSuite) TestLotteryCreateValidation() {
	s.initVault()

	cases := []struct {
		create *types.LotteryCreate
		err    error
	}{
		{&types.LotteryCreate{Name: "", TicketPrice: testPrice, MaxTickets: 5, StartTime: testStart, EndTime: testEnd, Fee: 10}, types.ErrInvalidName},
		{&types.LotteryCreate{Name: "this-name-is-way-past-the-thirty-two-byte-cap", TicketPrice: testPrice, MaxTickets: 5, StartTime: testStart, EndTime: testEnd, Fee: 10}, types.ErrInvalidName},
		{&types.LotteryCreate{Name: "pot", TicketPrice: 0, MaxTickets: 5, StartTime: testStart, EndTime: testEnd, Fee: 10}, types.ErrInvalidTicketPrice},
		{&types.LotteryCreate{Name: "pot", TicketPrice: testPrice, MaxTickets: 0, StartTime: testStart, EndTime: testEnd, Fee: 10}, types.ErrInvalidMaxTickets},
		{&types.LotteryCreate{Name: "pot", TicketPrice: testPrice, MaxTickets: 5, StartTime: testStart, EndTime: testEnd, Fee: 101}, types.ErrInvalidFee},
		{&types.LotteryCreate{Name: "pot", TicketPrice: testPrice, MaxTickets: 5, StartTime: testEnd, EndTime: testStart, Fee: 10}, types.ErrInvalidStartEndTime},
	}
	for _, c := range cases {
		_, err := s.exec(&types.SolpotAction{Ty: types.SolpotActionCreate, Create: c.create}, addrAuthority)
		assert.Equal(s.T(), c.err, err)
	}

	_, err := s.exec(&types.SolpotAction{
		Ty:     types.SolpotActionCreate,
		Create: &types.LotteryCreate{Name: "pot", TicketPrice: testPrice, MaxTickets: 5, StartTime: testStart, EndTime: testEnd, Fee: 10},
	}, addrStranger)
	assert.Equal(s.T(), types.ErrUnauthorizedSigner, err)

	s.createLottery("pot")
	lottery := s.lottery("pot")
	assert.Equal(s.T(), int32(types.LotteryPending), lottery.Status)
	assert.Equal(s.T(), int64(1), lottery.Round)
	assert.Empty(s.T(), lottery.Participants)
	assert.Empty(s.T(), lottery.Winner)

	_, err = s.exec(&types.SolpotAction{
		Ty:     types.SolpotActionCreate,
		Create: &types.LotteryCreate{Name: "pot", TicketPrice: testPrice, MaxTickets: 5, StartTime: testStart, EndTime: testEnd, Fee: 10},
	}, addrAuthority)
	assert.Equal(s.T(), types.ErrLotteryExists, err)
}

func (s *SolpotTestSuite) TestLotteryReconfigure() {
	s.initVault()
	s.createLottery("pot")

	setFee := func(fee int64, signer string) error {
		_, err := s.exec(&types.SolpotAction{
			Ty:     types.SolpotActionSetFee,
			SetFee: &types.LotterySetFee{Name: "pot", Fee: fee},
		}, signer)
		return err
	}

	assert.Equal(s.T(), types.ErrUnauthorizedSigner, setFee(20, addrStranger))
	assert.Equal(s.T(), types.ErrInvalidFee, setFee(101, addrAuthority))
	assert.Equal(s.T(), types.ErrInvalidFee, setFee(10, addrAuthority)) // 与当前值相同
	require.NoError(s.T(), setFee(20, addrAuthority))

	_, err := s.exec(&types.SolpotAction{
		Ty:             types.SolpotActionSetTicketPrice,
		SetTicketPrice: &types.LotterySetTicketPrice{Name: "pot", TicketPrice: testPrice},
	}, addrAuthority)
	assert.Equal(s.T(), types.ErrInvalidTicketPrice, err)

	_, err = s.exec(&types.SolpotAction{
		Ty:             types.SolpotActionSetTicketPrice,
		SetTicketPrice: &types.LotterySetTicketPrice{Name: "pot", TicketPrice: 2 * testPrice},
	}, addrAuthority)
	require.NoError(s.T(), err)

	_, err = s.exec(&types.SolpotAction{
		Ty:      types.SolpotActionSetTime,
		SetTime: &types.LotterySetTime{Name: "pot", StartTime: testEnd, EndTime: testStart},
	}, addrAuthority)
	assert.Equal(s.T(), types.ErrInvalidStartEndTime, err)

	_, err = s.exec(&types.SolpotAction{
		Ty:      types.SolpotActionSetTime,
		SetTime: &types.LotterySetTime{Name: "pot", StartTime: testStart + 1, EndTime: testEnd + 1},
	}, addrAuthority)
	require.NoError(s.T(), err)

	lottery := s.lottery("pot")
	assert.Equal(s.T(), int64(20), lottery.Fee)
	assert.Equal(s.T(), 2*testPrice, lottery.TicketPrice)
	assert.Equal(s.T(), testStart+1, lottery.StartTime)

	// 开售后配置全部冻结
	s.fund(addrBuyerA, 10*testPrice)
	_, err = s.buy("pot", addrBuyerA)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), types.ErrLotteryAlreadyStarted, setFee(30, addrAuthority))
}

func (s *SolpotTestSuite) TestLotteryBuyAdmission() {
	s.initVault()
	s.createLottery("pot")
	for _, addr := range []string{addrBuyerA, addrBuyerB, addrBuyerC} {
		s.fund(addr, 10*testPrice)
	}

	s.solpot.SetEnv(2, testStart-10, []byte("parent hash for the draw"))
	_, err := s.buy("pot", addrBuyerA)
	assert.Equal(s.T(), types.ErrLotteryNotStarted, err)

	s.solpot.SetEnv(3, testStart+10, []byte("parent hash for the draw"))
	_, err = s.buy("pot", addrBuyerA)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int32(types.LotteryActive), s.lottery("pot").Status)
	assert.Equal(s.T(), 9*testPrice, s.balance(addrBuyerA))
	assert.Equal(s.T(), testPrice, s.balance(s.solpot.GetAddr()))

	_, err = s.buy("pot", addrBuyerA)
	assert.Equal(s.T(), types.ErrAlreadyPurchased, err)
	assert.Len(s.T(), s.lottery("pot").Participants, 1)

	_, err = s.buy("pot", addrStranger)
	assert.Equal(s.T(), types.ErrNoBalance, err)

	s.solpot.SetEnv(4, testEnd, []byte("parent hash for the draw"))
	_, err = s.buy("pot", addrBuyerB)
	assert.Equal(s.T(), types.ErrLotteryEnded, err)
}

func (s *SolpotTestSuite) TestCapacityFillDraw() {
	s.initVault()
	_, err := s.exec(&types.SolpotAction{
		Ty: types.SolpotActionCreate,
		Create: &types.LotteryCreate{
			Name: "pot", TicketPrice: testPrice, MaxTickets: 2,
			StartTime: testStart, EndTime: testEnd, Fee: 10,
		},
	}, addrAuthority)
	require.NoError(s.T(), err)

	s.fund(addrBuyerA, testPrice)
	s.fund(addrBuyerB, testPrice)

	_, err = s.buy("pot", addrBuyerA)
	require.NoError(s.T(), err)

	receipt, err := s.buy("pot", addrBuyerB)
	require.NoError(s.T(), err)

	// 售出最后一张票的同一笔交易里完成开奖
	var drew bool
	for _, item := range receipt.Logs {
		if item.Ty == types.TyLogLotteryDraw {
			drew = true
		}
	}
	assert.True(s.T(), drew)

	lottery := s.lottery("pot")
	assert.Equal(s.T(), int32(types.LotteryEnded), lottery.Status)
	assert.Contains(s.T(), lottery.Participants, lottery.Winner)

	_, err = s.buy("pot", addrBuyerC)
	assert.Equal(s.T(), types.ErrLotteryEnded, err)

	// 已经开过奖，时间窗收盘不再有意义
	s.solpot.SetEnv(5, testEnd+10, []byte("parent hash for the draw"))
	_, err = s.exec(&types.SolpotAction{
		Ty:  types.SolpotActionEnd,
		End: &types.LotteryEnd{Name: "pot"},
	}, addrAuthority)
	assert.Equal(s.T(), types.ErrLotteryNotStarted, err)
}

func (s *SolpotTestSuite) fillLottery(name string, buyers []string) {
	for _, addr := range buyers {
		s.fund(addr, 10*testPrice)
		_, err := s.buy(name, addr)
		require.NoError(s.T(), err)
	}
}

func (s *SolpotTestSuite) TestEndAndClaim() {
	s.initVault()
	s.createLottery("pot")
	buyers := []string{addrBuyerA, addrBuyerB, addrBuyerC, addrBuyerD, addrBuyerE}
	s.fillLottery("pot", buyers)

	endLottery := func(signer string) error {
		_, err := s.exec(&types.SolpotAction{
			Ty:  types.SolpotActionEnd,
			End: &types.LotteryEnd{Name: "pot"},
		}, signer)
		return err
	}

	// 时间窗未走完
	assert.Equal(s.T(), types.ErrLotteryNotStarted, endLottery(addrAuthority))

	s.solpot.SetEnv(6, testEnd, []byte("parent hash for the draw"))
	assert.Equal(s.T(), types.ErrUnauthorizedSigner, endLottery(addrStranger))
	require.NoError(s.T(), endLottery(addrAuthority))

	lottery := s.lottery("pot")
	assert.Equal(s.T(), int32(types.LotteryEnded), lottery.Status)
	require.Contains(s.T(), lottery.Participants, lottery.Winner)
	winner := lottery.Winner

	claim := func(signer string) error {
		_, err := s.exec(&types.SolpotAction{
			Ty:    types.SolpotActionClaim,
			Claim: &types.LotteryClaim{Name: "pot"},
		}, signer)
		return err
	}

	assert.Equal(s.T(), types.ErrUnauthorizedSigner, claim(addrStranger))

	// 奖池 500，抽成 10% 留 50，奖金 450
	before := s.balance(winner)
	potBefore := s.balance(s.solpot.GetAddr())
	require.NoError(s.T(), claim(winner))
	assert.Equal(s.T(), before+450*types.Coin, s.balance(winner))
	assert.Equal(s.T(), potBefore-450*types.Coin, s.balance(s.solpot.GetAddr()))
	assert.Equal(s.T(), int32(types.LotteryClaimed), s.lottery("pot").Status)

	// 重复领奖和未中奖领奖走同一道闸门
	assert.Equal(s.T(), types.ErrUnauthorizedSigner, claim(winner))
}

func (s *SolpotTestSuite) TestClaimFeeFlooring() {
	s.initVault()
	// 票价用最小单位，让 奖池×抽成 不被 100 整除
	_, err := s.exec(&types.SolpotAction{
		Ty: types.SolpotActionCreate,
		Create: &types.LotteryCreate{
			Name: "pot", TicketPrice: 35, MaxTickets: 10,
			StartTime: testStart, EndTime: testEnd, Fee: 10,
		},
	}, addrAuthority)
	require.NoError(s.T(), err)

	for _, addr := range []string{addrBuyerA, addrBuyerB, addrBuyerC} {
		s.fund(addr, 35)
		_, err := s.buy("pot", addr)
		require.NoError(s.T(), err)
	}

	s.solpot.SetEnv(10, testEnd, []byte("parent hash for the draw"))
	_, err = s.exec(&types.SolpotAction{
		Ty:  types.SolpotActionEnd,
		End: &types.LotteryEnd{Name: "pot"},
	}, addrAuthority)
	require.NoError(s.T(), err)
	winner := s.lottery("pot").Winner

	// 奖池 105，抽成 floor(105×10/100)=10 留在金库，奖金 95
	receipt, err := s.exec(&types.SolpotAction{
		Ty:    types.SolpotActionClaim,
		Claim: &types.LotteryClaim{Name: "pot"},
	}, winner)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(95), s.balance(winner))
	assert.Equal(s.T(), int64(10), s.balance(s.solpot.GetAddr()))

	var claimed bool
	for _, item := range receipt.Logs {
		if item.Ty != types.TyLogLotteryClaim {
			continue
		}
		var l types.ReceiptLottery
		require.NoError(s.T(), types.Decode(item.Log, &l))
		assert.Equal(s.T(), int64(95), l.Payout)
		assert.Equal(s.T(), int64(10), l.FeeAmount)
		claimed = true
	}
	assert.True(s.T(), claimed)
}

func (s *SolpotTestSuite) TestReset() {
	s.initVault()
	s.createLottery("pot")

	reset := func(signer string) error {
		_, err := s.exec(&types.SolpotAction{
			Ty:    types.SolpotActionReset,
			Reset: &types.LotteryReset{Name: "pot", StartTime: testEnd + 100, EndTime: testEnd + 200},
		}, signer)
		return err
	}

	assert.Equal(s.T(), types.ErrLotteryNotEnded, reset(addrAuthority))

	s.fillLottery("pot", []string{addrBuyerA, addrBuyerB})
	assert.Equal(s.T(), types.ErrLotteryNotEnded, reset(addrAuthority))

	s.solpot.SetEnv(7, testEnd, []byte("parent hash for the draw"))
	_, err := s.exec(&types.SolpotAction{
		Ty:  types.SolpotActionEnd,
		End: &types.LotteryEnd{Name: "pot"},
	}, addrAuthority)
	require.NoError(s.T(), err)
	winner := s.lottery("pot").Winner

	assert.Equal(s.T(), types.ErrUnauthorizedSigner, reset(addrStranger))

	// 未领奖就重置：奖金先结给中奖者，资金不滞留
	before := s.balance(winner)
	require.NoError(s.T(), reset(addrAuthority))
	assert.Equal(s.T(), before+180*types.Coin, s.balance(winner))

	lottery := s.lottery("pot")
	assert.Equal(s.T(), int32(types.LotteryPending), lottery.Status)
	assert.Equal(s.T(), int64(2), lottery.Round)
	assert.Empty(s.T(), lottery.Participants)
	assert.Empty(s.T(), lottery.Winner)
	assert.Equal(s.T(), testEnd+100, lottery.StartTime)
	assert.Equal(s.T(), testEnd+200, lottery.EndTime)

	// 状态索引只留 pending 一条
	list, err := s.solpot.listLotteries(types.LotteryPending)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"pot"}, list.Names)
	for _, status := range []int32{types.LotteryActive, types.LotteryEnded, types.LotteryClaimed} {
		list, err = s.solpot.listLotteries(status)
		require.NoError(s.T(), err)
		assert.Empty(s.T(), list.Names)
	}

	// 新一轮正常售票
	s.solpot.SetEnv(8, testEnd+150, []byte("parent hash for the draw"))
	_, err = s.buy("pot", addrBuyerA)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int32(types.LotteryActive), s.lottery("pot").Status)
}

func (s *SolpotTestSuite) TestQueries() {
	s.initVault()
	s.createLottery("pot")
	s.createLottery("jackpot")

	list, err := s.solpot.listLotteries(types.LotteryPending)
	require.NoError(s.T(), err)
	assert.ElementsMatch(s.T(), []string{"pot", "jackpot"}, list.Names)

	s.fillLottery("pot", []string{addrBuyerA, addrBuyerB})

	list, err = s.solpot.listLotteries(types.LotteryActive)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"pot"}, list.Names)
	list, err = s.solpot.listLotteries(types.LotteryPending)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"jackpot"}, list.Names)

	balance, err := s.solpot.getLotteryBalance("pot")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2*testPrice, balance.Pool)
	balance, err = s.solpot.getLotteryBalance("jackpot")
	require.NoError(s.T(), err)
	assert.Zero(s.T(), balance.Pool)

	records, err := s.solpot.getLotteryBuyRecords("pot", 1)
	require.NoError(s.T(), err)
	require.Len(s.T(), records.Records, 2)
	for _, record := range records.Records {
		assert.Equal(s.T(), testPrice, record.Amount)
		assert.Equal(s.T(), int64(1), record.Round)
	}

	_, err = s.solpot.getLotteryDrawRecord("pot", 1)
	assert.Equal(s.T(), types.ErrNotFound, err)

	s.solpot.SetEnv(9, testEnd, []byte("parent hash for the draw"))
	_, err = s.exec(&types.SolpotAction{
		Ty:  types.SolpotActionEnd,
		End: &types.LotteryEnd{Name: "pot"},
	}, addrAuthority)
	require.NoError(s.T(), err)

	draw, err := s.solpot.getLotteryDrawRecord("pot", 1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.lottery("pot").Winner, draw.Winner)
	assert.Equal(s.T(), int64(1), draw.Round)

	_, err = s.solpot.getLotteryInfo("nosuch")
	assert.Equal(s.T(), types.ErrNotFound, err)
}

func (s *SolpotTestSuite) TestExecRejects() {
	tx := &types.Transaction{
		Execer:  []byte("other"),
		Payload: nil,
		Signer:  addrBuyerA,
	}
	_, err := s.solpot.Exec(tx, 0)
	assert.Equal(s.T(), types.ErrExecNameNotMatch, err)

	tx = &types.Transaction{
		Execer:  []byte(s.solpot.GetName()),
		Payload: nil,
		Signer:  "not-an-address",
	}
	_, err = s.solpot.Exec(tx, 0)
	assert.Equal(s.T(), types.ErrInvalidParam, err)

	_, err = s.exec(&types.SolpotAction{Ty: 999}, addrBuyerA)
	assert.Equal(s.T(), types.ErrActionNotSupport, err)
}

func (s *SolpotTestSuite) TestFailedExecLeavesStateUntouched() {
	s.initVault()
	s.createLottery("pot")
	s.fund(addrBuyerA, 10*testPrice)

	_, err := s.buy("pot", addrBuyerA)
	require.NoError(s.T(), err)

	// 重复购票被拒，余额和参与者列表都不动
	balanceBefore := s.balance(addrBuyerA)
	_, err = s.buy("pot", addrBuyerA)
	assert.Equal(s.T(), types.ErrAlreadyPurchased, err)
	assert.Equal(s.T(), balanceBefore, s.balance(addrBuyerA))
	assert.Len(s.T(), s.lottery("pot").Participants, 1)
}

func (s *SolpotTestSuite) TestWinnerIndexDeterministic() {
	action := &Action{blocktime: 1234, parentHash: []byte("hash one")}
	for n := 1; n <= 16; n++ {
		index := action.winnerIndex(1, n)
		assert.Equal(s.T(), index, action.winnerIndex(1, n))
		assert.GreaterOrEqual(s.T(), index, int64(0))
		assert.Less(s.T(), index, int64(n))
	}
}
