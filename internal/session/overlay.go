package session

// Overlay is the single active overlay. One value instead of three
// independent booleans makes overlapping modals unrepresentable.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayConfigurator
	OverlayCart
	OverlayStatus
)

func (o Overlay) String() string {
	switch o {
	case OverlayConfigurator:
		return "configurator"
	case OverlayCart:
		return "cart"
	case OverlayStatus:
		return "status"
	default:
		return "none"
	}
}
