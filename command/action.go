package command

type (
	// Action is an effect that can be bound to a remote slot.
	// Identity is a stable name used only for introspection.
	Action interface {
		Perform()
		Identity() string
	}

	// Switch is a receiver that can be turned on and off.
	Switch interface {
		On()
		Off()
	}

	// Stereo is a receiver with a selectable input and volume.
	Stereo interface {
		Switch
		SetCD()
		SetVolume(volume int)
	}
)

// StereoVolume is the level applied by StereoOnWithCD.
const StereoVolume = 5

type (
	// LightOn turns a Switch on.
	LightOn struct {
		light Switch
	}

	// LightOff turns a Switch off.
	LightOff struct {
		light Switch
	}

	// StereoOnWithCD powers a Stereo and plays a CD at StereoVolume.
	StereoOnWithCD struct {
		stereo Stereo
	}

	// StereoOff powers a Stereo off.
	StereoOff struct {
		stereo Stereo
	}

	// NoOp does nothing and is bound to every unassigned slot.
	NoOp struct{}
)

// Empty is the shared NoOp instance.
var Empty Action = NoOp{}


// LightOn

func (c *LightOn) Perform() {
	c.light.On()
}

func (c *LightOn) Identity() string {
	return "LightOnCommand"
}

// NewLightOn creates a LightOn bound to light.
func NewLightOn(light Switch) (*LightOn, error) {
	if err := checkReceiver("LightOnCommand", "light", light); err != nil {
		return nil, err
	}
	return &LightOn{light}, nil
}


// LightOff

func (c *LightOff) Perform() {
	c.light.Off()
}

func (c *LightOff) Identity() string {
	return "LightOffCommand"
}

// NewLightOff creates a LightOff bound to light.
func NewLightOff(light Switch) (*LightOff, error) {
	if err := checkReceiver("LightOffCommand", "light", light); err != nil {
		return nil, err
	}
	return &LightOff{light}, nil
}


// StereoOnWithCD

func (c *StereoOnWithCD) Perform() {
	c.stereo.On()
	c.stereo.SetCD()
	c.stereo.SetVolume(StereoVolume)
}

func (c *StereoOnWithCD) Identity() string {
	return "StereoOnWithCDCommand"
}

// NewStereoOnWithCD creates a StereoOnWithCD bound to stereo.
func NewStereoOnWithCD(stereo Stereo) (*StereoOnWithCD, error) {
	if err := checkReceiver("StereoOnWithCDCommand", "stereo", stereo); err != nil {
		return nil, err
	}
	return &StereoOnWithCD{stereo}, nil
}


// StereoOff

func (c *StereoOff) Perform() {
	c.stereo.Off()
}

func (c *StereoOff) Identity() string {
	return "StereoOffCommand"
}

// NewStereoOff creates a StereoOff bound to stereo.
func NewStereoOff(stereo Stereo) (*StereoOff, error) {
	if err := checkReceiver("StereoOffCommand", "stereo", stereo); err != nil {
		return nil, err
	}
	return &StereoOff{stereo}, nil
}


// NoOp

func (NoOp) Perform() {}

func (NoOp) Identity() string {
	return "EmptyCommand"
}
