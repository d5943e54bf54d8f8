package jwt_test

import (
	"coinledger/pkg/jwt"
	"time"

	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		now     time.Time
		info    jwt.TokenInfo
		token   string
		claims  jwt.Claims
		err     error
	)

	BeforeEach(func() {
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		jwt.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { jwt.TimeNow = time.Now })

		service = jwt.NewJWTService([]byte("secret"))
		info = jwt.TokenInfo{Subject: "ops@example.com", Role: jwt.RoleAdmin, Expiration: time.Hour}
	})

	JustBeforeEach(func() {
		token, err = service.Issue(info)
		Expect(err).NotTo(HaveOccurred())
		claims, err = service.Validate(token)
	})

	It("round trips subject and role", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.Subject).To(Equal("ops@example.com"))
		Expect(claims.Role).To(Equal(jwt.RoleAdmin))
		Expect(claims.ExpiresAt).To(BeTemporally("==", now.Add(time.Hour)))
	})

	When("the token has expired", func() {
		JustBeforeEach(func() {
			now = now.Add(2 * time.Hour)
			claims, err = service.Validate(token)
		})

		It("returns ErrTokenExpired", func() {
			Expect(err).To(MatchError(jwt.ErrTokenExpired))
		})
	})

	When("the token was signed with another secret", func() {
		JustBeforeEach(func() {
			other, signErr := jwt.NewJWTService([]byte("other")).Issue(info)
			Expect(signErr).NotTo(HaveOccurred())
			claims, err = service.Validate(other)
		})

		It("returns ErrTokenNotValid", func() {
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})
	})

	When("the subject is empty", func() {
		BeforeEach(func() {
			info.Subject = ""
		})

		It("returns ErrMissingClaim", func() {
			Expect(err).To(MatchError(jwt.ErrMissingClaim))
		})
	})

	When("the token uses an unexpected signing method", func() {
		JustBeforeEach(func() {
			unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": "x", "exp": now.Add(time.Hour).Unix()})
			raw, signErr := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
			Expect(signErr).NotTo(HaveOccurred())
			claims, err = service.Validate(raw)
		})

		It("returns ErrTokenNotValid", func() {
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})
	})

	It("garbage is rejected", func() {
		_, err := service.Validate("not-a-token")
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})
})
