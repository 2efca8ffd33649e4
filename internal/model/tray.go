package model

// TraySize is the number of slots in the tray
const TraySize = 3

// Tray holds up to three pieces. A nil slot has been placed.
type Tray [TraySize]*Piece

// IsEmpty returns true when every slot has been used
func (t *Tray) IsEmpty() bool {
	for _, p := range t {
		if p != nil {
			return false
		}
	}
	return true
}

// Pieces returns the remaining pieces in slot order
func (t *Tray) Pieces() []*Piece {
	result := make([]*Piece, 0, TraySize)
	for _, p := range t {
		if p != nil {
			result = append(result, p)
		}
	}
	return result
}

// Find returns the slot holding the piece, or -1
func (t *Tray) Find(id PieceID) int {
	for i, p := range t {
		if p != nil && p.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the piece with the given ID, or nil
func (t *Tray) Get(id PieceID) *Piece {
	if i := t.Find(id); i >= 0 {
		return t[i]
	}
	return nil
}

// Remove clears the slot holding the piece. Returns false if it was not in the tray.
func (t *Tray) Remove(id PieceID) bool {
	i := t.Find(id)
	if i < 0 {
		return false
	}
	t[i] = nil
	return true
}

// Clone returns a deep copy
func (t *Tray) Clone() Tray {
	var result Tray
	for i, p := range t {
		if p != nil {
			result[i] = p.Clone()
		}
	}
	return result
}
