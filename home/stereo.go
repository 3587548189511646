package home

import "github.com/go-logr/logr"

// Input selects the source played by a Stereo.
type Input string

const (
	NoInput Input = ""
	CD      Input = "CD"
)

// Stereo is an audio unit with an input and volume.
type Stereo struct {
	on     bool
	input  Input
	volume int
	logger logr.Logger
}

func (s *Stereo) IsOn() bool {
	return s.on
}

func (s *Stereo) Input() Input {
	return s.input
}

func (s *Stereo) Volume() int {
	return s.volume
}

func (s *Stereo) On() {
	s.on = true
	s.logger.Info("stereo is on")
}

func (s *Stereo) Off() {
	s.on = false
	s.logger.Info("stereo is off")
}

func (s *Stereo) SetCD() {
	s.input = CD
	s.logger.Info("stereo is set for CD input")
}

func (s *Stereo) SetVolume(volume int) {
	s.volume = volume
	s.logger.Info("stereo volume set", "volume", volume)
}

// NewStereo creates a Stereo reporting to logger.
func NewStereo(logger logr.Logger) *Stereo {
	return &Stereo{logger: logger.WithName("stereo")}
}
