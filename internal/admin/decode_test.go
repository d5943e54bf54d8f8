package admin_test

import (
	"coinledger/internal/admin"
	"coinledger/internal/reward"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeAndValidate", func() {
	It("decodes a valid request", func() {
		var req admin.ResolveRequest
		err := admin.DecodeAndValidate(strings.NewReader(`{"transactionHash":"`+hash+`","honor":true}`), &req)
		Expect(err).NotTo(HaveOccurred())
		Expect(req.TransactionHash).To(Equal(hash))
		Expect(req.Honor).To(BeTrue())
	})

	It("rejects unknown fields", func() {
		var req admin.ResolveRequest
		err := admin.DecodeAndValidate(strings.NewReader(`{"transactionHash":"`+hash+`","approve":true}`), &req)
		Expect(err).To(MatchError(admin.ErrInvalidRequest))
	})

	It("runs validation after decoding", func() {
		var req admin.ReviewRequest
		err := admin.DecodeAndValidate(strings.NewReader(`{"transactionHash":"0xabc","notes":"x"}`), &req)
		Expect(err).To(MatchError(admin.ErrInvalidRequest))
		Expect(err).To(MatchError(ContainSubstring("validating payload")))
	})

	It("decodes settings patches", func() {
		var patch reward.SettingsPatch
		err := admin.DecodeAndValidate(strings.NewReader(`{"dailyLimit":5,"hashtags":[{"tag":"#Coin","reward":4}]}`), &patch)
		Expect(err).NotTo(HaveOccurred())
		Expect(*patch.DailyLimit).To(Equal(int64(5)))
		Expect(*patch.Hashtags).To(HaveLen(1))
	})
})
