package policy

import "fmt"

// WitnessItem is one entry in a WitnessTemplate: either the literal
// integer selector that picks a branch, or the name of a variable the
// spender must supply at spend time.
type WitnessItem struct {
	IsSelector bool
	Selector   int
	VarName    string
}

func (w WitnessItem) String() string {
	if w.IsSelector {
		return fmt.Sprintf("%d", w.Selector)
	}
	return w.VarName
}

// WitnessTemplate is the per-branch recipe of what a spender must place on
// the stack, top-to-bottom, to select and satisfy one conjunction branch.
type WitnessTemplate struct {
	Items    []WitnessItem
	Nickname []byte
}

// NewWitnessTemplate returns an empty template.
func NewWitnessTemplate() *WitnessTemplate {
	return &WitnessTemplate{}
}

// add prepends an item so construction order (reverse of discovery order,
// since emission walks a branch left to right but the verifier consumes
// the stack top first) ends up matching spend-time stack order.
func (w *WitnessTemplate) add(item WitnessItem) {
	w.Items = append([]WitnessItem{item}, w.Items...)
}

// AddVariable records that name must be supplied as a witness item.
func (w *WitnessTemplate) AddVariable(name string) {
	w.add(WitnessItem{VarName: name})
}

// AddSelector records the literal branch-selector value.
func (w *WitnessTemplate) AddSelector(n int) {
	w.add(WitnessItem{IsSelector: true, Selector: n})
}

// SetNickname tags the template with the branch's discriminating feature,
// set by template-verify emission for provenance.
func (w *WitnessTemplate) SetNickname(nickname []byte) {
	w.Nickname = nickname
}
