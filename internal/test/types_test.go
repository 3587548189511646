package test

import (
	"testing"

	"github.com/miruken-go/remote/internal"
	"github.com/stretchr/testify/suite"
)

type (
	Lamp struct{}

	Switch interface {
		On()
	}
)

func (l *Lamp) On() {}

type TypesTestSuite struct {
	suite.Suite
}

func (suite *TypesTestSuite) TestIsNil() {
	suite.Run("Untyped", func() {
		suite.True(internal.IsNil(nil))
	})

	suite.Run("TypedPointer", func() {
		var lamp *Lamp
		var sw Switch = lamp
		suite.True(internal.IsNil(sw))
	})

	suite.Run("NilMap", func() {
		var m map[string]int
		suite.True(internal.IsNil(m))
	})

	suite.Run("Pointer", func() {
		suite.False(internal.IsNil(&Lamp{}))
	})

	suite.Run("Value", func() {
		suite.False(internal.IsNil(Lamp{}))
		suite.False(internal.IsNil(0))
		suite.False(internal.IsNil(""))
	})
}

func TestTypesTestSuite(t *testing.T) {
	suite.Run(t, new(TypesTestSuite))
}
