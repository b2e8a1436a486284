package auth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aquamon.dev/aquamon/internal/auth"
)

var _ = Describe("Password", func() {
	Describe("HashPassword", func() {
		It("should produce a hash that is not the plaintext", func() {
			hash, err := auth.HashPassword("secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).NotTo(BeEmpty())
			Expect(hash).NotTo(Equal("secret"))
		})

		It("should produce different hashes for the same password", func() {
			hash1, err := auth.HashPassword("secret")
			Expect(err).NotTo(HaveOccurred())
			hash2, err := auth.HashPassword("secret")
			Expect(err).NotTo(HaveOccurred())

			// bcrypt salts every hash
			Expect(hash1).NotTo(Equal(hash2))
		})
	})

	Describe("CheckPassword", func() {
		It("should accept the original password", func() {
			hash, err := auth.HashPassword("secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(auth.CheckPassword(hash, "secret")).To(BeTrue())
		})

		It("should reject a wrong password", func() {
			hash, err := auth.HashPassword("secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(auth.CheckPassword(hash, "other")).To(BeFalse())
		})

		It("should reject an empty hash", func() {
			Expect(auth.CheckPassword("", "secret")).To(BeFalse())
		})
	})
})
