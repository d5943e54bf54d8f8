package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"sync"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	// ErrReceiptPending means the node does not know a mined receipt yet. It is worth asking again.
	ErrReceiptPending      = errors.New("transaction receipt pending")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrUnsupportedChain    = errors.New("unsupported chain")
	ErrInvalidHash         = errors.New("invalid transaction hash")
)

var hashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Permanent reports whether asking the node again cannot change the answer.
func Permanent(err error) bool {
	return errors.Is(err, ErrTransactionReverted) ||
		errors.Is(err, ErrUnsupportedChain) ||
		errors.Is(err, ErrInvalidHash)
}

func Dial(ctx context.Context, url string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial ethereum node: %w", err)
	}
	return client, nil
}

// ReceiptConfirmer checks bridge transactions against one chain's node.
type ReceiptConfirmer struct {
	logs    *zap.SugaredLogger
	client  NodeClient
	chain   string
	limiter *rate.Limiter

	chainIDMu sync.Mutex
	chainID   *big.Int
}

// NewReceiptConfirmer throttles node calls to rps per second. rps <= 0 disables throttling.
func NewReceiptConfirmer(logger *zap.SugaredLogger, client NodeClient, chain string, rps float64) *ReceiptConfirmer {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &ReceiptConfirmer{
		logs:    logger,
		client:  client,
		chain:   chain,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (c *ReceiptConfirmer) Chain() string {
	return c.chain
}

// Confirm returns the confirmation of a mined transaction that succeeded.
func (c *ReceiptConfirmer) Confirm(ctx context.Context, chain, hashStr string) (Confirmation, error) {
	if chain != c.chain {
		return Confirmation{}, fmt.Errorf("%w: %q", ErrUnsupportedChain, chain)
	}
	if !hashPattern.MatchString(hashStr) {
		return Confirmation{}, fmt.Errorf("%w: %q", ErrInvalidHash, hashStr)
	}
	hash := common.HexToHash(hashStr)

	if err := c.limiter.Wait(ctx); err != nil {
		return Confirmation{}, err
	}
	tx, pending, err := c.client.TransactionByHash(ctx, hash)
	if err != nil {
		return Confirmation{}, c.nodeError("fetching transaction", hashStr, err)
	}
	if pending {
		return Confirmation{}, fmt.Errorf("transaction %s not mined: %w", hashStr, ErrReceiptPending)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Confirmation{}, err
	}
	receipt, err := c.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return Confirmation{}, c.nodeError("fetching receipt", hashStr, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return Confirmation{}, fmt.Errorf("transaction %s in block %d: %w", hashStr, receipt.BlockNumber, ErrTransactionReverted)
	}

	chainID, err := c.chainIDOf(ctx)
	if err != nil {
		return Confirmation{}, c.nodeError("fetching chain id", hashStr, err)
	}
	from, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
	if err != nil {
		return Confirmation{}, fmt.Errorf("recover sender of %s: %w", hashStr, err)
	}

	var to *string
	if tx.To() != nil {
		addr := tx.To().Hex()
		to = &addr
	}

	c.logs.Infow("bridge transaction confirmed",
		"transaction_hash", hashStr, "block_number", receipt.BlockNumber.Uint64(), "from", from.Hex())

	return Confirmation{
		TransactionHash: tx.Hash().Hex(),
		BlockHash:       receipt.BlockHash.Hex(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		From:            from.Hex(),
		To:              to,
		Value:           tx.Value().String(),
	}, nil
}

func (c *ReceiptConfirmer) chainIDOf(ctx context.Context) (*big.Int, error) {
	c.chainIDMu.Lock()
	defer c.chainIDMu.Unlock()

	if c.chainID != nil {
		return c.chainID, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	id, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	c.chainID = id
	return id, nil
}

func (c *ReceiptConfirmer) nodeError(op, hash string, err error) error {
	if errors.Is(err, geth.NotFound) {
		return fmt.Errorf("%s %s: %w", op, hash, ErrReceiptPending)
	}
	return fmt.Errorf("%s %s: %w", op, hash, err)
}
