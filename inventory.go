package wander

import "go.uber.org/zap"

// InventoryItem links an item id to the icon shown once it is collected and,
// optionally, to a display room switched to on collection.
type InventoryItem struct {
	ID      string
	Icon    *Node
	Display *Node
}

// Inventory tracks collected items. Display rooms are shown through the
// display graph's SwitchTo, so collecting never adds back history.
type Inventory struct {
	svc       *Services
	display   *Graph
	items     map[string]InventoryItem
	collected map[string]bool
}

// NewInventory creates an inventory over items. Items without an id or icon
// are skipped. When hideIcons is set every icon starts hidden.
func NewInventory(svc *Services, display *Graph, items []InventoryItem, hideIcons bool) *Inventory {
	inv := &Inventory{
		svc:       svc,
		display:   display,
		items:     make(map[string]InventoryItem, len(items)),
		collected: make(map[string]bool),
	}
	for _, it := range items {
		if it.ID == "" || it.Icon == nil {
			continue
		}
		inv.items[it.ID] = it
	}
	if hideIcons {
		inv.SetAllIconsActive(false)
	}
	return inv
}

// Collect shows the item's icon and, if it has a display room, switches the
// display graph to it. Unknown ids return false.
func (inv *Inventory) Collect(id string) bool {
	it, ok := inv.items[id]
	if !ok {
		return false
	}
	inv.svc.binder().SetActive(it.Icon, true)
	inv.collected[id] = true
	if it.Display != nil && inv.display != nil {
		inv.display.SwitchTo(it.Display)
	}
	inv.svc.emit(Event{Type: EventItemCollected, ItemID: id, Node: it.Icon})
	return true
}

// Collected reports whether id has been collected.
func (inv *Inventory) Collected(id string) bool {
	return inv.collected[id]
}

// SetAllIconsActive shows or hides every icon.
func (inv *Inventory) SetAllIconsActive(active bool) {
	b := inv.svc.binder()
	for _, it := range inv.items {
		b.SetActive(it.Icon, active)
	}
}

// Pickup collects the item represented by node, unless node's riddle gate is
// closed. A refused pickup changes nothing and reports hint (or the node's
// LockedHint when hint is empty). A successful pickup disposes node.
func (inv *Inventory) Pickup(node *Node, id string, hint string) bool {
	if node == nil || node.IsDisposed() || inv.collected[id] {
		return false
	}
	if hint == "" {
		hint = node.LockedHint
	}
	if !inv.svc.TryEnter(node, hint) {
		return false
	}
	if !inv.Collect(id) {
		inv.svc.logger().Debug("pickup of unknown item", zap.String("item", id))
		return false
	}
	node.Dispose()
	return true
}

// MakeCollectible turns node into a clickable pickup for item id.
func (inv *Inventory) MakeCollectible(node *Node, id string) {
	node.Interactable = true
	node.OnClick = func(ClickContext) { inv.Pickup(node, id, "") }
}
