package main

import (
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/suite"
)

type RunTestSuite struct {
	suite.Suite
}

func (suite *RunTestSuite) TestRun() {
	suite.Run("Defaults", func() {
		suite.Nil(run(testr.New(suite.T()), nil))
	})

	suite.Run("File", func() {
		suite.Nil(run(testr.New(suite.T()),
			[]string{"../../config/koanf/test/configs/remote.json"}))
	})

	suite.Run("MissingFile", func() {
		err := run(testr.New(suite.T()), []string{"missing.json"})
		suite.ErrorContains(err, "load missing.json")
	})

	suite.Run("Env", func() {
		suite.T().Setenv("REMOTE__remote__slots", "0")
		err := run(testr.New(suite.T()), nil)
		suite.ErrorContains(err, "Slots")
	})
}

func TestRunTestSuite(t *testing.T) {
	suite.Run(t, new(RunTestSuite))
}
