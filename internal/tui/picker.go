package tui

// Picker manages the buffer-switching overlay state.
type Picker struct {
	Active   bool
	Selected int
}

// Show activates the picker with the given buffer pre-selected.
func (p *Picker) Show(currentIndex int) {
	p.Active = true
	p.Selected = currentIndex
}

func (p *Picker) Hide() {
	p.Active = false
}

// MoveUp moves the selection up, wrapping to the bottom.
func (p *Picker) MoveUp(max int) {
	if p.Selected > 0 {
		p.Selected--
	} else if max > 0 {
		p.Selected = max - 1
	}
}

// MoveDown moves the selection down, wrapping to the top.
func (p *Picker) MoveDown(max int) {
	if p.Selected < max-1 {
		p.Selected++
	} else {
		p.Selected = 0
	}
}
