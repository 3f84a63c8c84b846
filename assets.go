package wander

// AssetSet is the read-only content of the overlay for one room or trigger:
// a background image and indexed mask images with optional audio aligned by
// index. The core never mutates an AssetSet it is given.
type AssetSet struct {
	Background Sprite
	Masks      []Sprite
	MaskAudio  []AudioClip
}

// IsEmpty reports whether the set has neither a background nor any mask.
// A nil set is empty.
func (a *AssetSet) IsEmpty() bool {
	if a == nil {
		return true
	}
	return a.Background.IsZero() && len(a.Masks) == 0
}

// MaskIndex maps a requested mask index onto the set. Out-of-range indices
// degrade to 0. Returns -1 when the set has no masks.
func (a *AssetSet) MaskIndex(requested int) int {
	if a == nil || len(a.Masks) == 0 {
		return -1
	}
	if requested < 0 || requested >= len(a.Masks) {
		return 0
	}
	return requested
}

// Mask returns the mask sprite selected by requested (see MaskIndex).
func (a *AssetSet) Mask(requested int) (Sprite, bool) {
	i := a.MaskIndex(requested)
	if i < 0 {
		return Sprite{}, false
	}
	return a.Masks[i], true
}

// Audio returns the clip aligned with the mask selected by requested, or a
// zero clip when there is none.
func (a *AssetSet) Audio(requested int) AudioClip {
	i := a.MaskIndex(requested)
	if i < 0 || i >= len(a.MaskAudio) {
		return AudioClip{}
	}
	return a.MaskAudio[i]
}

// assetChoice is the outcome of resolving which overlay content to show.
type assetChoice struct {
	set      *AssetSet
	fallback Sprite
}

func (c assetChoice) useFallback() bool {
	return c.set == nil
}

// resolveAssets picks overlay content for a switch to target made by graph g,
// optionally through trigger (nil for back navigation and display switches).
// Priority: trigger override, target's nested graph, g's own set, fallback.
func resolveAssets(g *Graph, target *Node, trigger *Trigger) assetChoice {
	if trigger != nil && !trigger.Assets.IsEmpty() {
		return assetChoice{set: trigger.Assets}
	}
	fallback := g.fallback
	if target != nil && target.Graph != nil && target.Graph != g {
		nested := target.Graph
		if !nested.assets.IsEmpty() {
			return assetChoice{set: nested.assets}
		}
		if !nested.fallback.IsZero() {
			fallback = nested.fallback
		}
	}
	if !g.assets.IsEmpty() {
		return assetChoice{set: g.assets}
	}
	return assetChoice{fallback: fallback}
}
