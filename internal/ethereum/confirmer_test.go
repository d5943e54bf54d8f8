package ethereum_test

import (
	"coinledger/internal/ethereum"
	"coinledger/internal/ethereum/fake"
	"context"
	"errors"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ReceiptConfirmer", func() {
	var (
		confirmer  *ethereum.ReceiptConfirmer
		fakeClient *fake.NodeClient
		ctx        context.Context
		signedTx   *types.Transaction
		sender     common.Address
		chain      string
		hash       string
		result     ethereum.Confirmation
		err        error
	)

	BeforeEach(func() {
		privateKey, keyErr := crypto.GenerateKey()
		Expect(keyErr).NotTo(HaveOccurred())
		sender = crypto.PubkeyToAddress(privateKey.PublicKey)

		chainID := big.NewInt(5)
		recipient := common.HexToAddress("0x00000000000000000000000000000000000000b1")
		tx := types.NewTransaction(7, recipient, big.NewInt(42), 21000, big.NewInt(1), nil)
		signedTx, keyErr = types.SignTx(tx, types.LatestSignerForChainID(chainID), privateKey)
		Expect(keyErr).NotTo(HaveOccurred())

		fakeClient = new(fake.NodeClient)
		fakeClient.ChainIDReturns(chainID, nil)
		fakeClient.TransactionByHashReturns(signedTx, false, nil)
		fakeClient.TransactionReceiptReturns(&types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			BlockHash:   common.HexToHash("0xabc"),
			BlockNumber: big.NewInt(100),
		}, nil)

		ctx = context.Background()
		chain = "ethereum"
		hash = signedTx.Hash().Hex()
		confirmer = ethereum.NewReceiptConfirmer(zap.NewNop().Sugar(), fakeClient, "ethereum", 0)
	})

	JustBeforeEach(func() {
		result, err = confirmer.Confirm(ctx, chain, hash)
	})

	When("the transaction is mined and succeeded", func() {
		It("should return its confirmation", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.TransactionHash).To(Equal(hash))
			Expect(result.BlockNumber).To(Equal(uint64(100)))
			Expect(result.From).To(Equal(sender.Hex()))
			Expect(*result.To).To(Equal(common.HexToAddress("0x00000000000000000000000000000000000000b1").Hex()))
			Expect(result.Value).To(Equal("42"))

			_, argHash := fakeClient.TransactionReceiptArgsForCall(0)
			Expect(argHash).To(Equal(signedTx.Hash()))
		})

		It("should ask for the chain id only once", func() {
			_, err := confirmer.Confirm(ctx, chain, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeClient.ChainIDCallCount()).To(Equal(1))
			Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
		})
	})

	When("the transaction is still pending", func() {
		BeforeEach(func() {
			fakeClient.TransactionByHashReturns(signedTx, true, nil)
		})

		It("should report a pending receipt", func() {
			Expect(err).To(MatchError(ethereum.ErrReceiptPending))
			Expect(ethereum.Permanent(err)).To(BeFalse())
			Expect(fakeClient.TransactionReceiptCallCount()).To(BeZero())
		})
	})

	When("the node does not know the receipt", func() {
		BeforeEach(func() {
			fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
		})

		It("should report a pending receipt", func() {
			Expect(err).To(MatchError(ethereum.ErrReceiptPending))
		})
	})

	When("the transaction reverted", func() {
		BeforeEach(func() {
			fakeClient.TransactionReceiptReturns(&types.Receipt{
				Status:      types.ReceiptStatusFailed,
				BlockNumber: big.NewInt(100),
			}, nil)
		})

		It("should report a permanent failure", func() {
			Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
			Expect(ethereum.Permanent(err)).To(BeTrue())
		})
	})

	When("the node call fails", func() {
		var nodeErr error

		BeforeEach(func() {
			nodeErr = errors.New("connection reset")
			fakeClient.TransactionByHashReturns(nil, false, nodeErr)
		})

		It("should return a retryable error", func() {
			Expect(err).To(MatchError(nodeErr))
			Expect(ethereum.Permanent(err)).To(BeFalse())
		})
	})

	When("the event is for another chain", func() {
		BeforeEach(func() {
			chain = "solana"
		})

		It("should refuse without calling the node", func() {
			Expect(err).To(MatchError(ethereum.ErrUnsupportedChain))
			Expect(fakeClient.TransactionByHashCallCount()).To(BeZero())
		})
	})

	When("the hash is malformed", func() {
		BeforeEach(func() {
			hash = "0x1234"
		})

		It("should refuse without calling the node", func() {
			Expect(err).To(MatchError(ethereum.ErrInvalidHash))
			Expect(fakeClient.TransactionByHashCallCount()).To(BeZero())
		})
	})

	When("context is cancelled", func() {
		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(ctx)
			cancel()
		})

		It("should return context cancelled error", func() {
			Expect(err).To(MatchError(context.Canceled))
			Expect(fakeClient.TransactionByHashCallCount()).To(BeZero())
		})
	})
})
