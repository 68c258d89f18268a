package receipt

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validate", func() {
	var (
		r   Receipt
		err error
	)

	BeforeEach(func() {
		r = targetReceipt()
	})

	JustBeforeEach(func() {
		err = Validate(r)
	})

	When("the receipt is well-formed", func() {
		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("the receipt uses an ampersand in the retailer name", func() {
		BeforeEach(func() {
			r = cornerMarketReceipt()
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("retailer", func() {
		When("the retailer is empty", func() {
			BeforeEach(func() {
				r.Retailer = ""
			})

			It("should return a violation naming the retailer", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("retailer"))
			})
		})

		When("the retailer contains disallowed punctuation", func() {
			BeforeEach(func() {
				r.Retailer = "Target!"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("purchaseDate", func() {
		When("the date is not in YYYY-MM-DD format", func() {
			BeforeEach(func() {
				r.PurchaseDate = "01/02/2022"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("purchaseDate"))
			})
		})

		When("the date is not a real calendar date", func() {
			BeforeEach(func() {
				r.PurchaseDate = "2022-02-31"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("purchaseTime", func() {
		When("the hour is out of range", func() {
			BeforeEach(func() {
				r.PurchaseTime = "25:00"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("purchaseTime"))
			})
		})

		When("the minute is out of range", func() {
			BeforeEach(func() {
				r.PurchaseTime = "14:60"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("items", func() {
		When("the item list is empty", func() {
			BeforeEach(func() {
				r.Items = nil
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("at least one item"))
			})
		})

		When("an item description is empty", func() {
			BeforeEach(func() {
				r.Items[0].ShortDescription = ""
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("items[0]"))
			})
		})

		When("an item description contains disallowed punctuation", func() {
			BeforeEach(func() {
				r.Items[1].ShortDescription = "Emils Cheese Pizza!"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("items[1]"))
			})
		})
	})

	Describe("price format", func() {
		When("an item price has one fractional digit", func() {
			BeforeEach(func() {
				r.Items[0].Price = "6.5"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("an item price has three fractional digits", func() {
			BeforeEach(func() {
				r.Items[0].Price = "6.493"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("an item price carries a sign", func() {
			BeforeEach(func() {
				r.Items[0].Price = "-6.49"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("an item price uses scientific notation", func() {
			BeforeEach(func() {
				r.Items[0].Price = "6.49e2"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("the total has the wrong number of fractional digits", func() {
			BeforeEach(func() {
				r.Total = "35.3"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("total"))
			})
		})
	})

	Describe("total cross-check", func() {
		When("the total is off by one cent", func() {
			BeforeEach(func() {
				r.Total = "35.36"
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("does not equal the sum"))
			})
		})

		When("an item price is already malformed", func() {
			BeforeEach(func() {
				r.Items[0].Price = "bad"
			})

			It("should not additionally report a sum mismatch", func() {
				var validationErr *ValidationError
				Expect(errors.As(err, &validationErr)).To(BeTrue())
				Expect(validationErr.Violations).To(HaveLen(1))
				Expect(validationErr.Violations[0]).To(ContainSubstring("items[0].price"))
			})
		})
	})

	Describe("violation accumulation", func() {
		When("multiple fields are invalid", func() {
			BeforeEach(func() {
				r.Retailer = ""
				r.PurchaseTime = "25:00"
				r.Items[0].Price = "6.5"
			})

			It("should report every violation", func() {
				var validationErr *ValidationError
				Expect(errors.As(err, &validationErr)).To(BeTrue())
				Expect(validationErr.Violations).To(HaveLen(3))
			})
		})
	})
})
