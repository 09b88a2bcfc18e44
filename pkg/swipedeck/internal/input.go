package internal

import (
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a physical input translated to a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// InputProcessor maps keyboard and game controller events to virtual buttons.
type InputProcessor struct {
	keys        map[sdl.Keycode]constants.VirtualButton
	buttons     map[sdl.GameControllerButton]constants.VirtualButton
	controllers map[sdl.JoystickID]*sdl.GameController
}

var inputProcessor *InputProcessor

func defaultKeyMapping() map[sdl.Keycode]constants.VirtualButton {
	return map[sdl.Keycode]constants.VirtualButton{
		sdl.K_UP:        constants.VirtualButtonUp,
		sdl.K_DOWN:      constants.VirtualButtonDown,
		sdl.K_LEFT:      constants.VirtualButtonLeft,
		sdl.K_RIGHT:     constants.VirtualButtonRight,
		sdl.K_RETURN:    constants.VirtualButtonA,
		sdl.K_a:         constants.VirtualButtonA,
		sdl.K_ESCAPE:    constants.VirtualButtonB,
		sdl.K_BACKSPACE: constants.VirtualButtonB,
		sdl.K_b:         constants.VirtualButtonB,
		sdl.K_SPACE:     constants.VirtualButtonStart,
		sdl.K_TAB:       constants.VirtualButtonSelect,
		sdl.K_m:         constants.VirtualButtonMenu,
	}
}

func defaultControllerMapping() map[sdl.GameControllerButton]constants.VirtualButton {
	return map[sdl.GameControllerButton]constants.VirtualButton{
		sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
		sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
		sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
		sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
		sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonA,
		sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonB,
		sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
		sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
		sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
	}
}

// InitInputProcessor opens every attached game controller.
func InitInputProcessor() {
	inputProcessor = &InputProcessor{
		keys:        defaultKeyMapping(),
		buttons:     defaultControllerMapping(),
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		inputProcessor.openController(i)
	}
}

func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		GetInternalLogger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := gc.Joystick().InstanceID()
	p.controllers[id] = gc
	GetInternalLogger().Debug("Opened controller", "name", gc.Name(), "id", id)
}

// ProcessSDLEvent translates an SDL event. It returns nil for events that do
// not map to a virtual button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button, ok := p.keys[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN, Repeat: e.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		button, ok := p.buttons[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			if gc, ok := p.controllers[e.Which]; ok {
				gc.Close()
				delete(p.controllers, e.Which)
			}
		}
	}
	return nil
}

func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id, gc := range inputProcessor.controllers {
		gc.Close()
		delete(inputProcessor.controllers, id)
	}
}
