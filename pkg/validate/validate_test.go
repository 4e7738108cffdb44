package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CheckSuite struct {
	suite.Suite
	constraints []Constraint
}

func TestCheckSuite(t *testing.T) {
	suite.Run(t, new(CheckSuite))
}

func (s *CheckSuite) SetupTest() {
	s.constraints = []Constraint{
		{Field: "name", RequiredMessage: "Name is required.", Rule: "min=1,max=5", Message: "Name is 1…5 characters."},
		{Field: "age", RequiredMessage: "Age is required.", Rule: "min=0,max=100", Message: "Age is 0…100."},
		{Field: "nickname", Rule: "max=3", Message: "Nickname is at most 3 characters."},
	}
}

func (s *CheckSuite) TestValid() {
	errs := Check(s.constraints, map[string]any{"name": "Ann", "age": 0})
	s.True(errs.Empty())
}

func (s *CheckSuite) TestRequired() {
	s.Run("missing keys", func() {
		errs := Check(s.constraints, map[string]any{})
		s.Equal([]string{"Name is required."}, errs["name"])
		s.Equal([]string{"Age is required."}, errs["age"])
		s.NotContains(errs, "nickname")
	})

	s.Run("nil values count as absent", func() {
		errs := Check(s.constraints, map[string]any{"name": nil, "age": nil})
		s.Len(errs, 2)
	})
}

func (s *CheckSuite) TestRules() {
	s.Run("empty string fails length", func() {
		errs := Check(s.constraints, map[string]any{"name": "", "age": 1})
		s.Equal([]string{"Name is 1…5 characters."}, errs["name"])
		s.Len(errs, 1)
	})

	s.Run("length counts runes", func() {
		errs := Check(s.constraints, map[string]any{"name": "Zoë…é", "age": 1})
		s.True(errs.Empty())
	})

	s.Run("numeric bounds", func() {
		s.Contains(Check(s.constraints, map[string]any{"name": "a", "age": -1}), "age")
		s.Contains(Check(s.constraints, map[string]any{"name": "a", "age": 101}), "age")
		s.True(Check(s.constraints, map[string]any{"name": "a", "age": 100}).Empty())
	})

	s.Run("optional field still checked when present", func() {
		errs := Check(s.constraints, map[string]any{"name": "a", "age": 1, "nickname": "long"})
		s.Equal([]string{"Nickname is at most 3 characters."}, errs["nickname"])
	})
}

func (s *CheckSuite) TestErrorString() {
	errs := Errors{}
	errs.Add("b", "second")
	errs.Add("a", "first")
	errs.Add("a", "again")
	s.Equal("a: first; again, b: second", errs.Error())
	s.True(strings.HasPrefix(errs.Error(), "a:"))
}
