package payroll_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ems-project/ems-backend/internal/payroll"
)

var _ = Describe("Payment composite IDs", func() {
	Describe("EncodePaymentID", func() {
		It("should encode employee id and date", func() {
			date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
			Expect(payroll.EncodePaymentID("E001", &date)).To(Equal("E001_20250315"))
		})

		It("should encode a nil date as unknown", func() {
			Expect(payroll.EncodePaymentID("E001", nil)).To(Equal("E001_unknown"))
		})
	})

	Describe("DecodePaymentID", func() {
		It("should round-trip an encoded id", func() {
			date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
			id := payroll.EncodePaymentID("E001", &date)

			eid, decoded, err := payroll.DecodePaymentID(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(eid).To(Equal("E001"))
			Expect(decoded).NotTo(BeNil())
			Expect(decoded.Equal(date)).To(BeTrue())
		})

		It("should decode the unknown token to a nil date", func() {
			eid, decoded, err := payroll.DecodePaymentID("E001_unknown")
			Expect(err).NotTo(HaveOccurred())
			Expect(eid).To(Equal("E001"))
			Expect(decoded).To(BeNil())
		})

		It("should reject an id without a separator", func() {
			_, _, err := payroll.DecodePaymentID("E001")
			Expect(err).To(MatchError(payroll.ErrMalformedPaymentID))
		})

		It("should reject an id with extra separators", func() {
			_, _, err := payroll.DecodePaymentID("E_001_20250315")
			Expect(err).To(MatchError(payroll.ErrMalformedPaymentID))
		})

		It("should reject empty parts", func() {
			_, _, err := payroll.DecodePaymentID("_20250315")
			Expect(err).To(MatchError(payroll.ErrMalformedPaymentID))

			_, _, err = payroll.DecodePaymentID("E001_")
			Expect(err).To(MatchError(payroll.ErrMalformedPaymentID))
		})

		It("should reject a date of the wrong length", func() {
			_, _, err := payroll.DecodePaymentID("E001_202503")
			Expect(err).To(MatchError(payroll.ErrMalformedPaymentID))
		})

		It("should reject an impossible calendar date", func() {
			_, _, err := payroll.DecodePaymentID("E001_20250230")
			Expect(err).To(MatchError(payroll.ErrMalformedPaymentID))
		})

		It("should reject non-numeric date text", func() {
			_, _, err := payroll.DecodePaymentID("E001_notadate")
			Expect(err).To(MatchError(payroll.ErrMalformedPaymentID))
		})
	})
})

var _ = Describe("Training display IDs", func() {
	It("should prefix the employee id", func() {
		Expect(payroll.EncodeTrainingID("E007")).To(Equal("tr_E007"))
	})

	It("should strip the prefix when decoding", func() {
		Expect(payroll.DecodeTrainingID("tr_E007")).To(Equal("E007"))
	})

	It("should accept a bare employee id", func() {
		Expect(payroll.DecodeTrainingID("E007")).To(Equal("E007"))
	})
})
