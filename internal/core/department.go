package core

// Department is a top-level grouping in the navigation tree. The set is
// static and defined at process start.
type Department struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	HasSubmenu bool   `json:"hasSubmenu"`
}

// SubmenuItem is a second-level item under a department. Order within a
// department matters for display only.
type SubmenuItem struct {
	ID                 string `json:"id"`
	Label              string `json:"label"`
	ParentDepartmentID string `json:"parentDepartmentId"`
}

// PanelKind identifies a dedicated leaf-detail panel with bespoke behavior.
type PanelKind string

const (
	PanelBuyer      PanelKind = "buyer"
	PanelVendor     PanelKind = "vendor"
	PanelFactory    PanelKind = "factory"
	PanelPO         PanelKind = "po"
	PanelStoreSheet PanelKind = "store-sheet"
)

// LeafPanel describes what a submenu leaf renders: either a dedicated panel
// or a generic list of action buttons. A dedicated panel always takes
// precedence over the generic fallback.
type LeafPanel struct {
	Dedicated PanelKind `json:"dedicated,omitempty"`
	Buttons   []string  `json:"buttons,omitempty"`
}

// Catalog holds the static navigation configuration. Immutable after
// construction.
type Catalog struct {
	departments []Department
	submenus    map[string][]SubmenuItem // department id -> ordered items
	dedicated   map[string]PanelKind     // leaf id -> dedicated panel
	buttons     map[string][]string      // leaf id -> generic button labels
}

// DefaultCatalog returns the Binder navigation tree.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		submenus:  make(map[string][]SubmenuItem),
		dedicated: make(map[string]PanelKind),
		buttons:   make(map[string][]string),
	}

	add := func(d Department, items ...SubmenuItem) {
		c.departments = append(c.departments, d)
		c.submenus[d.ID] = items
	}

	add(Department{ID: "chd-code-creation", Label: "CHD Code Creation", HasSubmenu: true},
		SubmenuItem{ID: "buyer-codes", Label: "Buyer Codes", ParentDepartmentID: "chd-code-creation"},
		SubmenuItem{ID: "vendor-codes", Label: "Vendor Codes", ParentDepartmentID: "chd-code-creation"},
		SubmenuItem{ID: "factory-codes", Label: "Factory Codes", ParentDepartmentID: "chd-code-creation"},
	)
	add(Department{ID: "chd-po-issue", Label: "CHD PO Issue", HasSubmenu: true},
		SubmenuItem{ID: "purchase-orders", Label: "Purchase Orders", ParentDepartmentID: "chd-po-issue"},
	)
	sourcing := []string{
		"Yarn", "Recycled Yarn", "Fabric", "DYE", "Knitting", "Quilting",
		"Embroidery", "Cut & Sew", "Artworks & Trims", "Packaging Material",
		"Factory Supplies", "Fiber", "Weaving", "Braided", "Printing",
		"Job Card Service", "Tufting", "Carpet", "Manpower",
	}
	sourcingItems := make([]SubmenuItem, 0, len(sourcing))
	for _, label := range sourcing {
		sourcingItems = append(sourcingItems, SubmenuItem{
			ID:                 "sourcing-" + slugify(label),
			Label:              label,
			ParentDepartmentID: "sourcing",
		})
	}
	add(Department{ID: "sourcing", Label: "Sourcing", HasSubmenu: true}, sourcingItems...)

	add(Department{ID: "ims", Label: "IMS", HasSubmenu: true},
		SubmenuItem{ID: "inward-store-sheet", Label: "Inward Store Sheet", ParentDepartmentID: "ims"},
		SubmenuItem{ID: "outward-store-sheet", Label: "Outward Store Sheet", ParentDepartmentID: "ims"},
	)
	add(Department{ID: "operations", Label: "Operations", HasSubmenu: true},
		SubmenuItem{ID: "production", Label: "Production", ParentDepartmentID: "operations"},
		SubmenuItem{ID: "merchandising", Label: "Merchandising", ParentDepartmentID: "operations"},
		SubmenuItem{ID: "sampling", Label: "Sampling", ParentDepartmentID: "operations"},
	)
	add(Department{ID: "tqm", Label: "Total Quality Management", HasSubmenu: true},
		SubmenuItem{ID: "grn", Label: "Goods Receipt Notes", ParentDepartmentID: "tqm"},
		SubmenuItem{ID: "quality-formats", Label: "Quality Formats", ParentDepartmentID: "tqm"},
		SubmenuItem{ID: "production-quality-formats", Label: "Production Quality Formats", ParentDepartmentID: "tqm"},
	)
	add(Department{ID: "designing", Label: "Designing", HasSubmenu: false})
	add(Department{ID: "shipping", Label: "Shipping", HasSubmenu: true},
		SubmenuItem{ID: "shipped-goods", Label: "Shipped Goods", ParentDepartmentID: "shipping"},
		SubmenuItem{ID: "shipping-master", Label: "Shipping Master", ParentDepartmentID: "shipping"},
	)
	add(Department{ID: "accounts", Label: "Accounts", HasSubmenu: true},
		SubmenuItem{ID: "accounts-tally", Label: "Accounts Tally", ParentDepartmentID: "accounts"},
		SubmenuItem{ID: "sbi-4034", Label: "SBI-4034", ParentDepartmentID: "accounts"},
		SubmenuItem{ID: "cashbook", Label: "Cashbook", ParentDepartmentID: "accounts"},
	)
	add(Department{ID: "hr", Label: "HR", HasSubmenu: true},
		SubmenuItem{ID: "leave-applications", Label: "Leave Applications", ParentDepartmentID: "hr"},
		SubmenuItem{ID: "personal-aspirations", Label: "Personal Aspirations", ParentDepartmentID: "hr"},
		SubmenuItem{ID: "advance-requests", Label: "Advance Requests", ParentDepartmentID: "hr"},
		SubmenuItem{ID: "exit-interviews", Label: "Exit Interviews", ParentDepartmentID: "hr"},
		SubmenuItem{ID: "attendance", Label: "Attendance", ParentDepartmentID: "hr"},
	)

	c.dedicated["buyer-codes"] = PanelBuyer
	c.dedicated["vendor-codes"] = PanelVendor
	c.dedicated["factory-codes"] = PanelFactory
	c.dedicated["purchase-orders"] = PanelPO
	c.dedicated["inward-store-sheet"] = PanelStoreSheet
	c.dedicated["outward-store-sheet"] = PanelStoreSheet

	for _, item := range sourcingItems {
		c.buttons[item.ID] = []string{"Open Rate Sheet", "Vendor List", "Order Tracker"}
	}
	c.buttons["production"] = []string{"Production Plan", "Daily Output", "Line Status"}
	c.buttons["merchandising"] = []string{"Buyer Follow-up", "TNA Calendar"}
	c.buttons["sampling"] = []string{"Sample Requests", "Sample Tracker"}
	c.buttons["grn"] = []string{"New GRN", "GRN Register"}
	c.buttons["quality-formats"] = []string{"Inspection Checklist", "Audit Report"}
	c.buttons["production-quality-formats"] = []string{"Inline Report", "Final Report"}
	c.buttons["shipped-goods"] = []string{"Shipment Log", "Pending Dispatch"}
	c.buttons["shipping-master"] = []string{"Carrier Master", "Port Master"}
	c.buttons["accounts-tally"] = []string{"Open Tally Export", "Reconciliation"}
	c.buttons["sbi-4034"] = []string{"Statement", "Transactions"}
	c.buttons["cashbook"] = []string{"Day Book", "Monthly Summary"}
	c.buttons["leave-applications"] = []string{"Apply Leave", "Leave Register"}
	c.buttons["personal-aspirations"] = []string{"Submit Aspiration", "Review Board"}
	c.buttons["advance-requests"] = []string{"Request Advance", "Approval Queue"}
	c.buttons["exit-interviews"] = []string{"Schedule Interview", "Interview Records"}
	c.buttons["attendance"] = []string{"Mark Attendance", "Monthly Report"}

	return c
}

// Departments returns the top-level departments in display order.
func (c *Catalog) Departments() []Department {
	return c.departments
}

// Department looks up a department by id.
func (c *Catalog) Department(id string) (Department, bool) {
	for _, d := range c.departments {
		if d.ID == id {
			return d, true
		}
	}
	return Department{}, false
}

// Submenu returns the ordered submenu items of a department.
func (c *Catalog) Submenu(departmentID string) []SubmenuItem {
	return c.submenus[departmentID]
}

// Leaf looks up a submenu item by id across all departments.
func (c *Catalog) Leaf(leafID string) (SubmenuItem, bool) {
	for _, items := range c.submenus {
		for _, item := range items {
			if item.ID == leafID {
				return item, true
			}
		}
	}
	return SubmenuItem{}, false
}

// ResolveLeafPanel returns the panel descriptor for a leaf. A dedicated panel
// registered for the id takes precedence over the generic button list.
func (c *Catalog) ResolveLeafPanel(leafID string) (LeafPanel, bool) {
	if kind, ok := c.dedicated[leafID]; ok {
		return LeafPanel{Dedicated: kind}, true
	}
	if buttons, ok := c.buttons[leafID]; ok {
		return LeafPanel{Buttons: buttons}, true
	}
	return LeafPanel{}, false
}

func slugify(label string) string {
	out := make([]rune, 0, len(label))
	prevDash := false
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			prevDash = false
		default:
			if !prevDash && len(out) > 0 {
				out = append(out, '-')
				prevDash = true
			}
		}
	}
	if prevDash {
		out = out[:len(out)-1]
	}
	return string(out)
}
