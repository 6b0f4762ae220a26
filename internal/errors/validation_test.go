package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketeam-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestErrorListsFieldsInOrder() {
	ve := errors.NewValidationError()
	ve.AddFieldError("team", "is required")
	ve.AddFieldError("generation", "must be between 1 and 9")

	s.True(ve.HasErrors())
	s.Equal("validation failed: generation: must be between 1 and 9; team: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("user_id").
		InvalidField("opponent", "no known types").
		Fieldf("limit", "must be at most %d", 2000)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "opponent: is invalid: no known types")
}

func (s *ValidationTestSuite) TestBuilderWithoutErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "pikachu", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			s.Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("generation", 0, 1, 9, vb)
	s.Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("generation", 9, 1, 9, vb)
	s.NoError(vb.Build())
}
