// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	log "github.com/inconshreveable/log15"
	"github.com/solpot/solpot/account"
	"github.com/solpot/solpot/common/address"
	dbm "github.com/solpot/solpot/common/db"
	"github.com/solpot/solpot/types"
)

var llog = log.New("module", "execs."+types.SolpotX)

const lotteryCacheSize = 1024

// Solpot 执行器。宿主账本保证同一记录的交易串行进入 Exec，
// 这里再用一把锁兜底本地多协程调用。
type Solpot struct {
	mu       sync.Mutex
	stateDB  dbm.DB
	localDB  dbm.DB
	cfg      *types.Config
	execaddr string

	height     int64
	blocktime  int64
	parentHash []byte

	lotteryCache *lru.Cache
}

// New 创建执行器
func New(cfg *types.Config, stateDB dbm.DB, localDB dbm.DB) *Solpot {
	cache, _ := lru.New(lotteryCacheSize)
	return &Solpot{
		stateDB:      stateDB,
		localDB:      localDB,
		cfg:          cfg,
		execaddr:     address.ExecAddress(cfg.ExecName),
		lotteryCache: cache,
	}
}

// GetName 执行器名
func (s *Solpot) GetName() string {
	return s.cfg.ExecName
}

// GetAddr 合约自身地址，奖池余额记在这个地址上
func (s *Solpot) GetAddr() string {
	return s.execaddr
}

// SetEnv 由宿主在每个区块前设置执行环境。parentHash 是上一个区块的哈希，
// 交易提交时不可预知，作为开奖的熵源。
func (s *Solpot) SetEnv(height, blocktime int64, parentHash []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.height = height
	s.blocktime = blocktime
	s.parentHash = parentHash
}

// GetHeight 当前区块高度
func (s *Solpot) GetHeight() int64 {
	return s.height
}

// GetBlockTime 当前区块时间
func (s *Solpot) GetBlockTime() int64 {
	return s.blocktime
}

// stateCache 一笔交易的写缓存：读穿透到底层，写只进缓存，
// 成功后整体批量落库，失败时直接丢弃。
type stateCache struct {
	db    dbm.DB
	cache map[string][]byte
}

func newStateCache(db dbm.DB) *stateCache {
	return &stateCache{db: db, cache: make(map[string][]byte)}
}

func (c *stateCache) Get(key []byte) ([]byte, error) {
	if value, ok := c.cache[string(key)]; ok {
		if value == nil {
			return nil, dbm.ErrNotFound
		}
		return value, nil
	}
	return c.db.Get(key)
}

func (c *stateCache) Set(key []byte, value []byte) error {
	c.cache[string(key)] = value
	return nil
}

// Exec 执行一笔交易：校验、执行、原子落库。出错时不产生任何状态变更。
func (s *Solpot) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !bytes.Equal(tx.Execer, []byte(s.cfg.ExecName)) {
		return nil, types.ErrExecNameNotMatch
	}
	if err := address.CheckAddress(tx.From()); err != nil {
		llog.Error("Exec", "from", tx.From(), "err", err)
		return nil, types.ErrInvalidParam
	}

	var action types.SolpotAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, types.ErrInvalidParam
	}

	cache := newStateCache(s.stateDB)
	actiondb := s.newAction(cache, tx)

	receipt, err := actiondb.dispatch(&action)
	if err != nil {
		return nil, err
	}

	batch := s.stateDB.NewBatch(true)
	for _, kv := range receipt.KV {
		batch.Set(kv.Key, kv.Value)
	}
	if err := batch.Write(); err != nil {
		return nil, err
	}
	s.invalidate(&action)
	return receipt, nil
}

// Deposit 宿主账本入金，用于创世和测试环境
func (s *Solpot) Deposit(addr string, amount int64) (*types.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := address.CheckAddress(addr); err != nil {
		return nil, types.ErrInvalidParam
	}
	cache := newStateCache(s.stateDB)
	acc, err := account.NewAccountDB(s.cfg.ExecName, "pot", cache)
	if err != nil {
		return nil, err
	}
	receipt, err := acc.Deposit(addr, amount)
	if err != nil {
		return nil, err
	}
	batch := s.stateDB.NewBatch(true)
	for _, kv := range receipt.KV {
		batch.Set(kv.Key, kv.Value)
	}
	if err := batch.Write(); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *Solpot) invalidate(action *types.SolpotAction) {
	if name := actionLotteryName(action); name != "" {
		s.lotteryCache.Remove(name)
	}
}

func actionLotteryName(action *types.SolpotAction) string {
	switch action.Ty {
	case types.SolpotActionCreate:
		return action.Create.GetName()
	case types.SolpotActionSetFee:
		return action.SetFee.GetName()
	case types.SolpotActionSetTicketPrice:
		return action.SetTicketPrice.GetName()
	case types.SolpotActionSetTime:
		return action.SetTime.GetName()
	case types.SolpotActionBuy:
		return action.Buy.GetName()
	case types.SolpotActionEnd:
		return action.End.GetName()
	case types.SolpotActionClaim:
		return action.Claim.GetName()
	case types.SolpotActionReset:
		return action.Reset.GetName()
	}
	return ""
}
