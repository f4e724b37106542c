package core

import "fmt"

// OverlayPanel identifies a full-screen takeover launched from the buyer or
// vendor dedicated panels. Empty means no overlay is active.
type OverlayPanel string

const (
	OverlayNone              OverlayPanel = ""
	OverlayBuyerCodeForm     OverlayPanel = "buyerCodeForm"
	OverlayVendorCodeForm    OverlayPanel = "vendorCodeForm"
	OverlayVendorMasterSheet OverlayPanel = "vendorMasterSheet"
)

// NavigationState holds the five fields governing what the department page
// shows. At most one of a selected-leaf panel and an overlay is active; the
// reducer enforces the exclusions, it never toggles fields independently.
type NavigationState struct {
	HoveredDepartmentID  string       `json:"hoveredDepartmentId,omitempty"`
	StickyDepartmentID   string       `json:"stickyDepartmentId,omitempty"`
	SelectedDepartmentID string       `json:"selectedDepartmentId,omitempty"`
	SelectedLeafID       string       `json:"selectedLeafId,omitempty"`
	Overlay              OverlayPanel `json:"overlayPanel,omitempty"`
}

// ViewMode is the coarse screen the state renders to.
type ViewMode string

const (
	ViewIdle       ViewMode = "idle"       // department list
	ViewLeafDetail ViewMode = "leafDetail" // dedicated panel or generic button list
	ViewOverlay    ViewMode = "overlay"    // full-screen form or table
)

// EventKind tags a navigation event.
type EventKind string

const (
	EventDeptHover   EventKind = "deptHover"
	EventDeptLeave   EventKind = "deptLeave"
	EventDeptClick   EventKind = "deptClick"
	EventLeafClick   EventKind = "leafClick"
	EventOverlayOpen EventKind = "overlayOpen"
	EventOverlayBack EventKind = "overlayBack"
	EventBack        EventKind = "backToDepartments"
	EventPageChange  EventKind = "pageChange"
)

// Event is a single user input dispatched to the navigator. Exactly the
// fields relevant to the kind are set.
type Event struct {
	Kind         EventKind    `json:"kind"`
	DepartmentID string       `json:"departmentId,omitempty"`
	LeafID       string       `json:"leafId,omitempty"`
	Overlay      OverlayPanel `json:"overlay,omitempty"`
}

// Navigator is the state machine governing department navigation for one
// dashboard session. It performs no I/O beyond reading the static catalog.
type Navigator struct {
	catalog *Catalog
	state   NavigationState
}

// NewNavigator returns a navigator in the Idle state.
func NewNavigator(catalog *Catalog) *Navigator {
	return &Navigator{catalog: catalog}
}

// State returns a copy of the current navigation state.
func (n *Navigator) State() NavigationState {
	return n.state
}

// Mode reports which screen the current state renders.
func (n *Navigator) Mode() ViewMode {
	switch {
	case n.state.Overlay != OverlayNone:
		return ViewOverlay
	case n.state.SelectedLeafID != "":
		return ViewLeafDetail
	default:
		return ViewIdle
	}
}

// VisibleSubmenus returns the department ids whose submenu panel the
// renderer must show. At most one panel is ever visible: a pinned submenu
// overrides a hover on any other department, and hovering never unpins it.
func (n *Navigator) VisibleSubmenus() []string {
	if n.Mode() != ViewIdle {
		return nil
	}
	active := n.state.StickyDepartmentID
	if active == "" {
		active = n.state.HoveredDepartmentID
	}
	if active == "" {
		return nil
	}
	return []string{active}
}

// Apply dispatches one event through the reducer. Invalid events (unknown
// ids, overlays opened from the wrong panel) return an error and leave the
// state unchanged.
func (n *Navigator) Apply(ev Event) error {
	switch ev.Kind {
	case EventDeptHover:
		return n.deptHover(ev.DepartmentID)
	case EventDeptLeave:
		n.state.HoveredDepartmentID = ""
		return nil
	case EventDeptClick:
		return n.deptClick(ev.DepartmentID)
	case EventLeafClick:
		return n.leafClick(ev.LeafID)
	case EventOverlayOpen:
		return n.overlayOpen(ev.Overlay)
	case EventOverlayBack:
		if n.state.Overlay == OverlayNone {
			return fmt.Errorf("no overlay is open")
		}
		n.state.Overlay = OverlayNone
		return nil
	case EventBack, EventPageChange:
		// Back to the department list (or leaving the department page
		// entirely) clears all five fields atomically.
		n.state = NavigationState{}
		return nil
	default:
		return fmt.Errorf("unknown navigation event %q", ev.Kind)
	}
}

func (n *Navigator) deptHover(id string) error {
	if n.Mode() != ViewIdle {
		// The department list is not rendered in LeafDetail or Overlay;
		// hover events there are stale and ignored.
		return nil
	}
	dept, ok := n.catalog.Department(id)
	if !ok {
		return fmt.Errorf("unknown department %q", id)
	}
	if dept.HasSubmenu {
		n.state.HoveredDepartmentID = id
	}
	return nil
}

func (n *Navigator) deptClick(id string) error {
	if n.Mode() != ViewIdle {
		return nil
	}
	dept, ok := n.catalog.Department(id)
	if !ok {
		return fmt.Errorf("unknown department %q", id)
	}
	if dept.HasSubmenu {
		// Toggle sticky: a second click on the open department closes it.
		if n.state.StickyDepartmentID == id {
			n.state.StickyDepartmentID = ""
		} else {
			n.state.StickyDepartmentID = id
		}
		n.state.SelectedDepartmentID = ""
		return nil
	}
	n.state.SelectedDepartmentID = id
	n.state.StickyDepartmentID = ""
	n.state.SelectedLeafID = ""
	return nil
}

func (n *Navigator) leafClick(leafID string) error {
	if _, ok := n.catalog.Leaf(leafID); !ok {
		return fmt.Errorf("unknown submenu item %q", leafID)
	}
	n.state = NavigationState{SelectedLeafID: leafID}
	return nil
}

// overlayOpen is only valid from the buyer or vendor dedicated panels, and
// each panel may only launch its own overlays.
func (n *Navigator) overlayOpen(overlay OverlayPanel) error {
	if n.Mode() != ViewLeafDetail {
		return fmt.Errorf("overlay can only be opened from a leaf panel")
	}
	panel, ok := n.catalog.ResolveLeafPanel(n.state.SelectedLeafID)
	if !ok {
		return fmt.Errorf("no panel configured for leaf %q", n.state.SelectedLeafID)
	}
	switch overlay {
	case OverlayBuyerCodeForm:
		if panel.Dedicated != PanelBuyer {
			return fmt.Errorf("buyer code form is not reachable from %q", n.state.SelectedLeafID)
		}
	case OverlayVendorCodeForm, OverlayVendorMasterSheet:
		if panel.Dedicated != PanelVendor {
			return fmt.Errorf("vendor overlay %q is not reachable from %q", overlay, n.state.SelectedLeafID)
		}
	default:
		return fmt.Errorf("unknown overlay %q", overlay)
	}
	n.state.Overlay = overlay
	return nil
}
