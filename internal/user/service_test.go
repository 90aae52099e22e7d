package user_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/ems-project/ems-backend/internal"
	"github.com/ems-project/ems-backend/internal/user"
)

// Mock repository for testing
type mockUserRepository struct {
	users map[string]*user.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*user.User)}
}

func (m *mockUserRepository) AllUsers() ([]*user.User, error) {
	result := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *mockUserRepository) UserByEid(eid string) (*user.User, error) {
	u, ok := m.users[eid]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) UserByEmail(email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) CreateUser(u *user.User) error {
	if _, ok := m.users[u.Eid]; ok {
		return user.ErrDuplicateUser
	}
	m.users[u.Eid] = u
	return nil
}

func (m *mockUserRepository) UpdateUser(u *user.User) error {
	m.users[u.Eid] = u
	return nil
}

func (m *mockUserRepository) DeleteUser(eid string) error {
	delete(m.users, eid)
	return nil
}

func (m *mockUserRepository) AllUserTypes() ([]*user.UserType, error) {
	return []*user.UserType{
		{Urid: "1", UserType: "Admin"},
		{Urid: "2", UserType: "HR"},
		{Urid: "3", UserType: "Employee"},
	}, nil
}

var _ = Describe("User Service", func() {
	var (
		repo    *mockUserRepository
		service *user.Service
	)

	BeforeEach(func() {
		repo = newMockUserRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(repo, logger, bcrypt.MinCost)
	})

	Describe("CreateUser", func() {
		It("should hash the password with the configured cost", func() {
			// Given: a service configured with the minimum bcrypt cost
			created, err := service.CreateUser(user.UserDTO{
				Eid:      "E001",
				Email:    "admin@ems.local",
				Urid:     "1",
				Password: "admin123",
			})

			// Then: the stored hash verifies and carries that cost
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Password).To(BeEmpty())

			stored := repo.users["E001"]
			Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("admin123"))).To(Succeed())

			cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
			Expect(err).NotTo(HaveOccurred())
			Expect(cost).To(Equal(bcrypt.MinCost))
		})

		It("should fall back to the default cost when configured out of range", func() {
			service = user.NewService(repo, slog.New(slog.NewTextHandler(os.Stdout, nil)), 0)

			_, err := service.CreateUser(user.UserDTO{
				Eid:      "E001",
				Email:    "admin@ems.local",
				Urid:     "1",
				Password: "admin123",
			})
			Expect(err).NotTo(HaveOccurred())

			cost, err := bcrypt.Cost([]byte(repo.users["E001"].PasswordHash))
			Expect(err).NotTo(HaveOccurred())
			Expect(cost).To(Equal(bcrypt.DefaultCost))
		})

		It("should require a password", func() {
			_, err := service.CreateUser(user.UserDTO{
				Eid:   "E001",
				Email: "admin@ems.local",
				Urid:  "1",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("should reject a duplicate account", func() {
			dto := user.UserDTO{Eid: "E001", Email: "admin@ems.local", Urid: "1", Password: "admin123"}
			_, err := service.CreateUser(dto)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateUser(dto)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})
	})

	Describe("UpdateUser", func() {
		BeforeEach(func() {
			_, err := service.CreateUser(user.UserDTO{
				Eid:      "E001",
				Email:    "admin@ems.local",
				Urid:     "1",
				Password: "admin123",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should keep the stored hash when no password is supplied", func() {
			before := repo.users["E001"].PasswordHash

			updated, err := service.UpdateUser("E001", user.UserDTO{
				Email: "hr@ems.local",
				Urid:  "2",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Email).To(Equal("hr@ems.local"))
			Expect(repo.users["E001"].PasswordHash).To(Equal(before))
		})

		It("should rehash when a new password is supplied", func() {
			before := repo.users["E001"].PasswordHash

			_, err := service.UpdateUser("E001", user.UserDTO{
				Email:    "admin@ems.local",
				Urid:     "1",
				Password: "newpassword",
			})

			Expect(err).NotTo(HaveOccurred())
			after := repo.users["E001"].PasswordHash
			Expect(after).NotTo(Equal(before))
			Expect(bcrypt.CompareHashAndPassword([]byte(after), []byte("newpassword"))).To(Succeed())
		})

		It("should return 404 for an unknown account", func() {
			_, err := service.UpdateUser("E999", user.UserDTO{
				Email: "x@ems.local",
				Urid:  "3",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})

	Describe("UserByEid", func() {
		It("should never expose the password hash", func() {
			_, err := service.CreateUser(user.UserDTO{
				Eid:      "E001",
				Email:    "admin@ems.local",
				Urid:     "1",
				Password: "admin123",
			})
			Expect(err).NotTo(HaveOccurred())

			found, err := service.UserByEid("E001")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Password).To(BeEmpty())
		})
	})
})
