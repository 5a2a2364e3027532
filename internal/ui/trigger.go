package ui

// Trigger names the input that caused a visibility change.
type Trigger int

const (
	TriggerProgrammatic Trigger = iota
	TriggerOpenButton
	TriggerCloseButton
	TriggerBackdrop
	TriggerPrimary
	TriggerSecondary
	TriggerEscape
)

func (t Trigger) String() string {
	switch t {
	case TriggerProgrammatic:
		return "programmatic"
	case TriggerOpenButton:
		return "open-button"
	case TriggerCloseButton:
		return "close-button"
	case TriggerBackdrop:
		return "backdrop"
	case TriggerPrimary:
		return "primary"
	case TriggerSecondary:
		return "secondary"
	case TriggerEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// triggerForRegion maps a dialog button region to the trigger it fires.
func triggerForRegion(id string) Trigger {
	switch id {
	case RegionClose:
		return TriggerCloseButton
	case RegionPrimary:
		return TriggerPrimary
	case RegionSecondary:
		return TriggerSecondary
	default:
		return TriggerProgrammatic
	}
}
