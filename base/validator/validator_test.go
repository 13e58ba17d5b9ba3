package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite

	validator *CustomValidator
}

func (s *ValidatorTestSuite) SetupSuite() {
	s.validator = NewCustomValidator(validator.New()).(*CustomValidator)
}

func (s *ValidatorTestSuite) TestListingCategory() {
	type payload struct {
		Category string `validate:"listingCategory"`
	}

	tests := []struct {
		desc     string
		category string
		expValid bool
	}{
		{
			desc:     "known category",
			category: "Sneakers",
			expValid: true,
		},
		{
			desc:     "unknown category",
			category: "Spaceships",
			expValid: false,
		},
		{
			desc:     "empty category",
			category: "",
			expValid: false,
		},
	}
	for _, t := range tests {
		err := s.validator.Validate(&payload{Category: t.category})
		s.Equal(t.expValid, err == nil, t.desc)
	}
}

func (s *ValidatorTestSuite) TestListingStatus() {
	type payload struct {
		Status string `validate:"listingStatus"`
	}

	s.NoError(s.validator.Validate(&payload{Status: "sold"}))
	s.NoError(s.validator.Validate(&payload{Status: "disputed"}))
	s.Error(s.validator.Validate(&payload{Status: "active"}), "only terminal statuses can be requested")
	s.Error(s.validator.Validate(&payload{Status: "expired"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
