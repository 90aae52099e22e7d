package leave_test

import (
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ems-project/ems-backend/internal/leave"
)

// Mock counter for testing
type mockApplicationCounter struct {
	count       int64
	existing    map[string]bool
	countError  error
	existsError error
}

func newMockApplicationCounter() *mockApplicationCounter {
	return &mockApplicationCounter{existing: make(map[string]bool)}
}

func (m *mockApplicationCounter) CountApplications() (int64, error) {
	if m.countError != nil {
		return 0, m.countError
	}
	return m.count, nil
}

func (m *mockApplicationCounter) ApplicationExists(lid string) (bool, error) {
	if m.existsError != nil {
		return false, m.existsError
	}
	return m.existing[lid], nil
}

var _ = Describe("IDGenerator", func() {
	var (
		store  *mockApplicationCounter
		gen    *leave.IDGenerator
		logger *slog.Logger
	)

	BeforeEach(func() {
		store = newMockApplicationCounter()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		gen = leave.NewIDGenerator(store, logger)
	})

	Context("with an empty store", func() {
		It("should generate L001", func() {
			Expect(gen.Next()).To(Equal("L001"))
		})
	})

	Context("with existing applications", func() {
		It("should generate count+1", func() {
			store.count = 5
			Expect(gen.Next()).To(Equal("L006"))
		})
	})

	Context("when deletions left a collision at count+1", func() {
		It("should walk forward past taken ids", func() {
			store.count = 5
			store.existing["L006"] = true
			store.existing["L007"] = true

			Expect(gen.Next()).To(Equal("L008"))
		})
	})

	Context("when ids grow past three digits", func() {
		It("should widen the number instead of truncating", func() {
			store.count = 999
			Expect(gen.Next()).To(Equal("L1000"))
		})
	})

	Context("when counting fails", func() {
		It("should fall back to a timestamp-derived id", func() {
			store.countError = errors.New("database error")

			id := gen.Next()
			Expect(id).To(MatchRegexp(`^L\d{1,5}$`))
		})
	})

	Context("when the existence check fails", func() {
		It("should fall back to a timestamp-derived id", func() {
			store.count = 2
			store.existsError = errors.New("database error")

			id := gen.Next()
			Expect(id).To(MatchRegexp(`^L\d{1,5}$`))
		})
	})
})
