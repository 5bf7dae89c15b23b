// SPDX-License-Identifier: MIT

package layers

import (
	"errors"
	"fmt"
)

// Sentinel errors for layer operations.
var (
	ErrDuplicateLayer = errors.New("layers: duplicate layer name")
	ErrOutOfLayers    = errors.New("layers: no free layer slot")
	ErrLayerNotFound  = errors.New("layers: layer not found")
	ErrLayerIndex     = errors.New("layers: layer index out of range")
)

// MaxLayers is the number of layer slots, one per bit of a Key.
const MaxLayers = 64

// EverythingLayer is the name of layer 0.
const EverythingLayer = "Everything"

// Key is a layer membership mask.
type Key int64

// Manager holds layer names and the visible mask.
type Manager struct {
	names   []string
	index   map[string]int
	visible Key
}

// NewManager returns a manager holding only the visible "Everything" layer.
func NewManager() *Manager {
	return &Manager{
		names:   []string{EverythingLayer},
		index:   map[string]int{EverythingLayer: 0},
		visible: 1,
	}
}

// AddLayer registers a new, hidden layer and returns its index.
func (m *Manager) AddLayer(name string) (int, error) {
	if _, ok := m.index[name]; ok {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateLayer, name)
	}
	if len(m.names) == MaxLayers {
		return -1, fmt.Errorf("%w: %q", ErrOutOfLayers, name)
	}
	i := len(m.names)
	m.names = append(m.names, name)
	m.index[name] = i

	return i, nil
}

// NumLayers returns the number of layers, including layer 0.
func (m *Manager) NumLayers() int { return len(m.names) }

// LayerName returns the name of the layer at index.
func (m *Manager) LayerName(index int) (string, error) {
	if err := m.check(index); err != nil {
		return "", err
	}

	return m.names[index], nil
}

// LayerIndex returns the index of the named layer.
func (m *Manager) LayerIndex(name string) (int, error) {
	i, ok := m.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrLayerNotFound, name)
	}

	return i, nil
}

// SetLayerVisible shows or hides the layer at index, following the package
// visibility rules.
func (m *Manager) SetLayerVisible(index int, visible bool) error {
	if err := m.check(index); err != nil {
		return err
	}
	bit := Key(1) << index
	switch {
	case visible && index == 0:
		m.visible = 1
	case visible:
		m.visible = (m.visible &^ 1) | bit
	default:
		m.visible &^= bit
		if m.visible == 0 {
			m.visible = 1
		}
	}

	return nil
}

// IsLayerVisible reports whether the layer at index is visible.
func (m *Manager) IsLayerVisible(index int) (bool, error) {
	if err := m.check(index); err != nil {
		return false, err
	}

	return m.visible&(Key(1)<<index) != 0, nil
}

// Key returns the membership mask of the layer at index.
func (m *Manager) Key(index int) (Key, error) {
	if err := m.check(index); err != nil {
		return 0, err
	}

	return Key(1) << index, nil
}

// IsVisible reports whether a row with membership key is visible.
func (m *Manager) IsVisible(key Key) bool {
	return key&m.visible != 0
}

func (m *Manager) check(index int) error {
	if index < 0 || index >= len(m.names) {
		return fmt.Errorf("%w: %d", ErrLayerIndex, index)
	}

	return nil
}
