package jwt_test

import (
	"time"

	tokenIssuer "taskboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service   *tokenIssuer.JWTService
		secret    []byte
		tokenInfo tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = tokenIssuer.NewJWTService(secret)

		tokenInfo = tokenIssuer.TokenInfo{
			UserName:   "testuser",
			Subject:    "7",
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate", func() {
		It("should set the subject, username and expiry claims", func() {
			now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
			tokenIssuer.TimeNow = func() time.Time { return now }

			token := service.Generate(tokenInfo)

			claims, ok := token.Claims.(jwt.MapClaims)
			Expect(ok).To(BeTrue())
			Expect(claims["sub"]).To(Equal("7"))
			Expect(claims["username"]).To(Equal("testuser"))
			Expect(claims["iat"]).To(Equal(now.Unix()))
			Expect(claims["exp"]).To(Equal(now.Add(time.Hour).Unix()))
		})
	})

	Describe("Sign and Validate", func() {
		When("the token is signed with the service secret", func() {
			It("should round-trip the claims", func() {
				signed, err := service.Sign(service.Generate(tokenInfo))
				Expect(err).NotTo(HaveOccurred())
				Expect(signed).NotTo(BeEmpty())

				claims, err := service.Validate(signed)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal("7"))
				Expect(claims["username"]).To(Equal("testuser"))
			})
		})

		When("the token is signed with a different secret", func() {
			It("should return token not valid error", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(tokenInfo))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is malformed", func() {
			It("should return token not valid error", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			It("should return an error", func() {
				past := time.Now().Add(-48 * time.Hour)
				tokenIssuer.TimeNow = func() time.Time { return past }

				signed, err := service.Sign(service.Generate(tokenInfo))
				Expect(err).NotTo(HaveOccurred())

				tokenIssuer.TimeNow = time.Now

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
