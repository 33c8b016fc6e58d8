package jwt_test

import (
	"time"

	"ethsql/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		info    jwt.TokenInfo
		now     time.Time
	)

	BeforeEach(func() {
		service = jwt.NewJWTService([]byte("secret"))
		info = jwt.TokenInfo{
			UserName:   "alice",
			Subject:    "user-1",
			Wallet:     "0x1111111111111111111111111111111111111111",
			Expiration: 24,
		}

		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		jwt.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { jwt.TimeNow = time.Now })
	})

	It("signs and validates a token", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("user-1"))
		Expect(claims["username"]).To(Equal("alice"))
		Expect(claims["wallet"]).To(Equal(info.Wallet))
		Expect(claims["exp"]).To(BeNumerically("==", now.Add(24*time.Hour).Unix()))
	})

	It("rejects a token signed with another secret", func() {
		signed, err := jwt.NewJWTService([]byte("other")).Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})

	It("rejects another signing method", func() {
		token := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": "user-1"})
		signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})

	It("reports expired tokens", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		now = now.Add(25 * time.Hour)
		_, err = service.Validate(signed)
		Expect(err).To(MatchError(jwt.ErrTokenExpired))
	})
})
