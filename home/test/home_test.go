package test

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/logr/testr"
	"github.com/miruken-go/remote/command"
	"github.com/miruken-go/remote/control"
	"github.com/miruken-go/remote/home"
	"github.com/stretchr/testify/suite"
)

var (
	_ command.Switch = (*home.Light)(nil)
	_ command.Stereo = (*home.Stereo)(nil)
)

type HomeTestSuite struct {
	suite.Suite
}

func (suite *HomeTestSuite) TestLight() {
	suite.Run("Switch", func() {
		light := home.NewLight(testr.New(suite.T()))
		suite.False(light.IsOn())
		light.On()
		suite.True(light.IsOn())
		light.Off()
		suite.False(light.IsOn())
	})

	suite.Run("Logs", func() {
		var lines []string
		logger := funcr.New(func(prefix, args string) {
			lines = append(lines, prefix+" "+args)
		}, funcr.Options{})
		light := home.NewLight(logger)
		light.On()
		suite.Len(lines, 1)
		suite.Contains(lines[0], "light")
		suite.Contains(lines[0], `"msg"="light is on"`)
	})
}

func (suite *HomeTestSuite) TestStereo() {
	stereo := home.NewStereo(testr.New(suite.T()))
	suite.False(stereo.IsOn())
	suite.Equal(home.NoInput, stereo.Input())
	stereo.On()
	stereo.SetCD()
	stereo.SetVolume(11)
	suite.True(stereo.IsOn())
	suite.Equal(home.CD, stereo.Input())
	suite.Equal(11, stereo.Volume())
	stereo.Off()
	suite.False(stereo.IsOn())
}

func (suite *HomeTestSuite) TestRemote() {
	logger := testr.NewWithOptions(suite.T(), testr.Options{Verbosity: 1})
	light  := home.NewLight(logger)
	stereo := home.NewStereo(logger)

	lightOn, _   := command.NewLightOn(light)
	lightOff, _  := command.NewLightOff(light)
	stereoOn, _  := command.NewStereoOnWithCD(stereo)
	stereoOff, _ := command.NewStereoOff(stereo)

	remote := control.New(control.DefaultSlots, control.WithLogger(logger))
	suite.Nil(remote.Bind(control.Slot1, lightOn, lightOff))
	suite.Nil(remote.Bind(control.Slot2, stereoOn, stereoOff))

	suite.Nil(remote.Activate(control.Slot1))
	suite.True(light.IsOn())
	suite.Nil(remote.Deactivate(control.Slot1))
	suite.False(light.IsOn())

	suite.Nil(remote.Activate(control.Slot2))
	suite.True(stereo.IsOn())
	suite.Equal(home.CD, stereo.Input())
	suite.Equal(command.StereoVolume, stereo.Volume())
	suite.Nil(remote.Deactivate(control.Slot2))
	suite.False(stereo.IsOn())
}

func TestHomeTestSuite(t *testing.T) {
	suite.Run(t, new(HomeTestSuite))
}
