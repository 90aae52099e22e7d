package auth_test

import (
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/ems-project/ems-backend/internal/auth"
	"github.com/ems-project/ems-backend/internal/user"
)

// Mock user store for testing
type mockUserStore struct {
	users map[string]*user.User
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*user.User)}
}

func (m *mockUserStore) UserByEmail(email string) (*user.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserStore) addUser(eid, email, password, urid string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	Expect(err).NotTo(HaveOccurred())
	m.users[email] = &user.User{
		Eid:          eid,
		Email:        email,
		PasswordHash: string(hash),
		Urid:         urid,
	}
}

var _ = Describe("Auth Service", func() {
	var (
		store    *mockUserStore
		tokenGen *auth.JWTTokenGenerator
		service  *auth.Service
	)

	BeforeEach(func() {
		store = newMockUserStore()
		store.addUser("E001", "admin@ems.local", "admin123", "1")

		tokenGen = auth.NewJWTTokenGenerator("test-secret", time.Hour)
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(store, tokenGen, logger)
	})

	Describe("Authenticate", func() {
		Context("with valid credentials", func() {
			It("should return a validatable access token and the user identity", func() {
				// Given: a registered user
				// When: authenticating with the right password
				resp, err := service.Authenticate(auth.LoginDTO{
					Email:    "admin@ems.local",
					Password: "admin123",
				})

				// Then: the token carries the user's claims
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.AccessToken).NotTo(BeEmpty())
				Expect(resp.User.Eid).To(Equal("E001"))
				Expect(resp.User.Email).To(Equal("admin@ems.local"))
				Expect(resp.User.Urid).To(Equal("1"))

				claims, err := tokenGen.ValidateToken(resp.AccessToken)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims.Eid).To(Equal("E001"))
				Expect(claims.Urid).To(Equal("1"))
			})
		})

		Context("with a wrong password", func() {
			It("should return ErrInvalidCredentials", func() {
				_, err := service.Authenticate(auth.LoginDTO{
					Email:    "admin@ems.local",
					Password: "wrong",
				})

				Expect(err).To(MatchError(auth.ErrInvalidCredentials))
			})
		})

		Context("with an unknown email", func() {
			It("should return ErrInvalidCredentials without revealing the account is missing", func() {
				_, err := service.Authenticate(auth.LoginDTO{
					Email:    "nobody@ems.local",
					Password: "admin123",
				})

				Expect(err).To(MatchError(auth.ErrInvalidCredentials))
			})
		})

		Context("with missing fields", func() {
			It("should return a validation error for a missing email", func() {
				_, err := service.Authenticate(auth.LoginDTO{Password: "admin123"})

				var vErr auth.ValidationError
				Expect(errors.As(err, &vErr)).To(BeTrue())
			})

			It("should return a validation error for a missing password", func() {
				_, err := service.Authenticate(auth.LoginDTO{Email: "admin@ems.local"})

				var vErr auth.ValidationError
				Expect(errors.As(err, &vErr)).To(BeTrue())
			})
		})
	})

	Describe("ValidateAccessToken", func() {
		It("should reject a token signed with a different secret", func() {
			otherGen := auth.NewJWTTokenGenerator("other-secret", time.Hour)
			token, err := otherGen.GenerateAccessToken("E001", "1")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("should reject an expired token", func() {
			expiredGen := auth.NewJWTTokenGenerator("test-secret", -time.Hour)
			token, err := expiredGen.GenerateAccessToken("E001", "1")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(MatchError(auth.ErrTokenExpired))
		})

		It("should reject garbage", func() {
			_, err := service.ValidateAccessToken("not.a.token")
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})
	})
})
