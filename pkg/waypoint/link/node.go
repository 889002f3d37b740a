package link

import "github.com/waypoint-nav/waypoint/pkg/waypoint/constants"

// Node is anything a link can render: its children, the text primitive
// wrapping them, or the pressable element at the root.
type Node interface {
	node()
}

// Label is plain text content.
type Label string

// Localized is text content resolved through the message bundle when drawn.
type Localized struct {
	MessageID string
	Data      map[string]any // Template data for the message
}

// Icon is SVG content rasterized at Size x Size pixels when drawn.
type Icon struct {
	SVG  []byte
	Size int32
}

// Group renders its nodes side by side.
type Group []Node

// TextStyle controls how a Text node is drawn. Zero values defer to the theme.
type TextStyle struct {
	Color     uint32 // 0xRRGGBB, 0 uses the theme's link color
	FontSize  int
	Underline bool
	Align     constants.TextAlign
}

// Text is the text primitive. Links wrap their children in one unless
// NotText is set.
type Text struct {
	Style    *TextStyle
	Role     string
	Children Node
}

// PressableProps is the pass-through bag for the pressable primitive.
type PressableProps struct {
	Disabled           bool
	AccessibilityLabel string
	TestID             string
	Extra              map[string]any
}

// Pressable is the activatable element a link renders to.
type Pressable struct {
	Props   PressableProps
	OnPress *Handler
	Child   Node
}

func (Label) node()      {}
func (Localized) node()  {}
func (Icon) node()       {}
func (Group) node()      {}
func (*Text) node()      {}
func (*Pressable) node() {}

// TextRef receives the Text node a link renders, so ancestors can inspect
// or measure it after render.
type TextRef struct {
	Current *Text
}

// Walk calls fn for n and every node below it, depth first.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	switch v := n.(type) {
	case Group:
		for _, child := range v {
			Walk(child, fn)
		}
	case *Text:
		Walk(v.Children, fn)
	case *Pressable:
		Walk(v.Child, fn)
	}
}

// PlainText flattens the label content of n, skipping icons. Localized
// nodes contribute their message ID.
func PlainText(n Node) string {
	var out string
	Walk(n, func(n Node) {
		switch v := n.(type) {
		case Label:
			out += string(v)
		case Localized:
			out += v.MessageID
		}
	})
	return out
}
